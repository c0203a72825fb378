package settings

import "errors"

var ErrNotFound = errors.New("setting not found")

// Canonical defaults. These are the only fallback values anywhere;
// Service.Validate refuses to start with an unparseable stored value
// rather than silently substituting one of them.
const (
	KeyBorrowPeriodDays = "borrow_period"
	KeyFinePerDay       = "fine_per_day"

	DefaultBorrowPeriodDays = 20
	DefaultFinePerDay       = 0.20
)

// Setting is one key/value row of the mutable configuration store.
type Setting struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	Key         string `gorm:"size:64;uniqueIndex:ux_settings_key;column:key" json:"key"`
	Value       string `gorm:"size:255" json:"value"`
	Description string `gorm:"size:255" json:"description,omitempty"`
}

func (Setting) TableName() string { return "settings" }
