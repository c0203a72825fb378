package mysql

import (
	"context"
	"errors"

	loanDomain "library-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	err := r.db.WithContext(ctx).Create(l).Error
	if isDuplicateKey(err) {
		return loanDomain.ErrBookUnavailable
	}
	return err
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) HasOpenByBook(ctx context.Context, bookTomNo string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("book_tom_no = ? AND returned_at IS NULL", bookTomNo).
		Count(&n).Error
	return n > 0, err
}

func (r *LoanRepository) CountOpenByReader(ctx context.Context, readerNo string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("reader_no = ? AND returned_at IS NULL", readerNo).
		Count(&n).Error
	return n, err
}

func (r *LoanRepository) ListOpenDetailed(ctx context.Context) ([]loanDomain.BorrowedRow, error) {
	var rows []loanDomain.BorrowedRow
	err := r.db.WithContext(ctx).Table("borrows br").
		Select("br.loan_id, br.book_tom_no, b.title, b.author, br.reader_no, r.full_name, br.due_date, br.signature_ref").
		Joins("JOIN books b ON br.book_tom_no = b.tom_no").
		Joins("JOIN readers r ON br.reader_no = r.reader_no").
		Where("br.returned_at IS NULL").
		Order("br.due_date").
		Scan(&rows).Error
	return rows, err
}

func (r *LoanRepository) ListByReader(ctx context.Context, readerNo string) ([]loanDomain.HistoryRow, error) {
	var rows []loanDomain.HistoryRow
	err := r.db.WithContext(ctx).Table("borrows br").
		Select("br.loan_id, br.book_tom_no, b.title, br.borrowed_at, br.due_date, br.returned_at, br.fine_amount, br.fine_paid_at").
		Joins("JOIN books b ON br.book_tom_no = b.tom_no").
		Where("br.reader_no = ?", readerNo).
		Order("br.borrowed_at DESC").
		Scan(&rows).Error
	return rows, err
}
