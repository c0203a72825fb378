package uow

import (
	"context"

	"library-backend/internal/domain/catalog"
	"library-backend/internal/domain/loan"
	"library-backend/internal/domain/reader"
	"library-backend/internal/domain/settings"
)

type Repos struct {
	Loans    loan.Repository
	Books    catalog.Repository
	Readers  reader.Repository
	Settings settings.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
