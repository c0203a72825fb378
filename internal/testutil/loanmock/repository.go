package loanmock

import (
	"context"

	domain "library-backend/internal/domain/loan"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository. Fill in
// the function fields a test needs; unfilled ones return zero values.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	HasOpenByBookFn        func(ctx context.Context, bookTomNo string) (bool, error)
	CountOpenByReaderFn    func(ctx context.Context, readerNo string) (int64, error)
	ListOpenDetailedFn     func(ctx context.Context) ([]domain.BorrowedRow, error)
	ListByReaderFn         func(ctx context.Context, readerNo string) ([]domain.HistoryRow, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) HasOpenByBook(ctx context.Context, bookTomNo string) (bool, error) {
	if m.HasOpenByBookFn != nil {
		return m.HasOpenByBookFn(ctx, bookTomNo)
	}
	return false, nil
}

func (m *Repo) CountOpenByReader(ctx context.Context, readerNo string) (int64, error) {
	if m.CountOpenByReaderFn != nil {
		return m.CountOpenByReaderFn(ctx, readerNo)
	}
	return 0, nil
}

func (m *Repo) ListOpenDetailed(ctx context.Context) ([]domain.BorrowedRow, error) {
	if m.ListOpenDetailedFn != nil {
		return m.ListOpenDetailedFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByReader(ctx context.Context, readerNo string) ([]domain.HistoryRow, error) {
	if m.ListByReaderFn != nil {
		return m.ListByReaderFn(ctx, readerNo)
	}
	return nil, nil
}
