package catalog

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("book not found")

// Book is one catalog entry, keyed by its tom (volume) number.
type Book struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	TomNo     string    `gorm:"size:64;uniqueIndex:ux_books_tom_no" json:"tom_no"`
	Title     string    `gorm:"size:255" json:"title"`
	Author    string    `gorm:"size:255" json:"author"`
	Year      int       `json:"year,omitempty"`
	Price     float64   `gorm:"type:decimal(8,2);default:0" json:"price,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Book) TableName() string { return "books" }
