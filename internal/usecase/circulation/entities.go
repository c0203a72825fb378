package circulation

import (
	"time"

	"library-backend/internal/domain/loan"
)

type BorrowInput struct {
	BookTomNo string `json:"book_tom_no"`
	ReaderNo  string `json:"reader_no"`
	// Signature is an optional data:image/png;base64 payload captured on
	// the paired tablet.
	Signature string `json:"signature,omitempty"`
}

type LoanDTO struct {
	LoanID       string     `json:"loan_id"`
	BookTomNo    string     `json:"book_tom_no"`
	ReaderNo     string     `json:"reader_no"`
	BorrowedAt   time.Time  `json:"borrowed_at"`
	DueDate      time.Time  `json:"due_date"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
	FineAmount   float64    `json:"fine_amount"`
	FinePaidAt   *time.Time `json:"fine_paid_at,omitempty"`
	SignatureRef string     `json:"signature_ref,omitempty"`
	State        string     `json:"state"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:       l.LoanID,
		BookTomNo:    l.BookTomNo,
		ReaderNo:     l.ReaderNo,
		BorrowedAt:   l.BorrowedAt,
		DueDate:      l.DueDate,
		ReturnedAt:   l.ReturnedAt,
		FineAmount:   l.FineAmount,
		FinePaidAt:   l.FinePaidAt,
		SignatureRef: l.SignatureRef,
		State:        string(l.State()),
	}
}
