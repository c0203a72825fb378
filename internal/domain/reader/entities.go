package reader

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("reader not found")
	ErrHasOpenLoans = errors.New("reader has unreturned books")
)

// Reader is one registered library reader, keyed by their reader number.
type Reader struct {
	ID                   uint64    `gorm:"primaryKey;column:id" json:"-"`
	ReaderNo             string    `gorm:"size:64;uniqueIndex:ux_readers_reader_no" json:"reader_no"`
	FullName             string    `gorm:"size:255" json:"full_name"`
	LastRegistrationYear int       `json:"last_registration_year"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Reader) TableName() string { return "readers" }
