package loan

import (
	"context"
	"time"
)

// BorrowedRow is one open loan joined with its book and reader, as served
// by the borrowed-books listing.
type BorrowedRow struct {
	LoanID       string    `json:"loan_id"`
	BookTomNo    string    `json:"book_tom_no"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	ReaderNo     string    `json:"reader_no"`
	FullName     string    `json:"full_name"`
	DueDate      time.Time `json:"due_date"`
	SignatureRef string    `json:"signature_ref,omitempty"`
	Fine         float64   `json:"fine"`
}

// HistoryRow is one loan of a reader with the book title attached, used by
// the reader-details aggregate.
type HistoryRow struct {
	LoanID     string     `json:"loan_id"`
	BookTomNo  string     `json:"book_tom_no"`
	Title      string     `json:"title"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at"`
	FineAmount float64    `json:"fine_amount"`
	FinePaidAt *time.Time `json:"fine_paid_at"`
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)

	// HasOpenByBook answers the availability question for a single book.
	HasOpenByBook(ctx context.Context, bookTomNo string) (bool, error)
	CountOpenByReader(ctx context.Context, readerNo string) (int64, error)

	// Read-only reporting paths.
	ListOpenDetailed(ctx context.Context) ([]BorrowedRow, error)
	ListByReader(ctx context.Context, readerNo string) ([]HistoryRow, error)
}
