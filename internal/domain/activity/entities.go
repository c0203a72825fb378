package activity

import "time"

// Entry is one append-only activity_log row.
type Entry struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	Username  string    `gorm:"size:64" json:"username"`
	Action    string    `gorm:"size:128" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
}

func (Entry) TableName() string { return "activity_log" }
