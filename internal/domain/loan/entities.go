package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("loan not found")
	ErrBookUnavailable = errors.New("book is already loaned out")
	ErrAlreadyReturned = errors.New("loan already returned")
	ErrNothingToPay    = errors.New("no unpaid fine on this loan")
)

type State string

const (
	StateOpen          State = "open"
	StateClosedUnpaid  State = "closed_unpaid"
	StateClosedSettled State = "closed_settled"
	StateClosedPaid    State = "closed_paid"
)

// Loan is one borrow transaction, from issue to return and (optionally)
// fine payment. Open is non-NULL only while the loan is open, so the
// composite unique index on (book_tom_no, open) binds open rows only —
// NULLs compare distinct in both MySQL and SQLite unique indexes. That is
// the storage-level guarantee of at most one open loan per book.
type Loan struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string     `gorm:"size:32;uniqueIndex:ux_borrows_loan_id" json:"loan_id"`
	BookTomNo    string     `gorm:"size:64;uniqueIndex:ux_borrows_book_open" json:"book_tom_no"`
	ReaderNo     string     `gorm:"size:64;index:idx_borrows_reader" json:"reader_no"`
	Open         *bool      `gorm:"uniqueIndex:ux_borrows_book_open" json:"-"`
	BorrowedAt   time.Time  `gorm:"column:borrowed_at" json:"borrowed_at"`
	DueDate      time.Time  `gorm:"column:due_date" json:"due_date"`
	ReturnedAt   *time.Time `gorm:"column:returned_at" json:"returned_at"`
	FineAmount   float64    `gorm:"type:decimal(8,2);default:0" json:"fine_amount"`
	FinePaidAt   *time.Time `gorm:"column:fine_paid_at" json:"fine_paid_at"`
	SignatureRef string     `gorm:"size:255" json:"signature_ref,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "borrows" }

// IsOpen reports whether the book is still out.
func (l *Loan) IsOpen() bool { return l.ReturnedAt == nil }

func (l *Loan) State() State {
	switch {
	case l.ReturnedAt == nil:
		return StateOpen
	case l.FineAmount <= 0:
		return StateClosedSettled
	case l.FinePaidAt != nil:
		return StateClosedPaid
	default:
		return StateClosedUnpaid
	}
}

// OpenMarker is the value stored in the Open column while a loan is open.
func OpenMarker() *bool {
	v := true
	return &v
}
