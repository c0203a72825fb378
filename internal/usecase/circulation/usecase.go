package circulation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"library-backend/internal/domain/activity"
	"library-backend/internal/domain/catalog"
	"library-backend/internal/domain/loan"
	"library-backend/internal/domain/reader"
	"library-backend/internal/domain/settings"
	"library-backend/internal/domain/uow"
	"library-backend/internal/fine"
	"library-backend/pkg/id"
)

var (
	ErrInvalidInput = errors.New("book and reader are required")
	// ErrDependency wraps artifact-storage failures; a failed signature
	// write aborts the whole borrow, no partial ledger row survives.
	ErrDependency = errors.New("dependency failure")
)

// SignatureStore persists a captured signature image and returns the
// reference stored on the loan row.
type SignatureStore interface {
	Save(dataURL, readerNo, bookTomNo string, at time.Time) (string, error)
	Remove(ref string) error
}

type Usecase struct {
	uow        uow.UnitOfWork
	loans      loan.Repository
	settings   *settings.Service
	signatures SignatureStore
	audit      activity.Sink
	now        func() time.Time
}

func NewUsecase(u uow.UnitOfWork, loans loan.Repository, s *settings.Service, sigs SignatureStore, audit activity.Sink) *Usecase {
	return &Usecase{uow: u, loans: loans, settings: s, signatures: sigs, audit: audit, now: time.Now}
}

// Borrow opens a loan. Availability is checked and the row inserted in one
// transaction; the partial unique index on (book, open) backstops the check
// so two concurrent borrows of the same book cannot both commit.
func (u *Usecase) Borrow(ctx context.Context, in BorrowInput) (*LoanDTO, error) {
	if in.BookTomNo == "" || in.ReaderNo == "" {
		return nil, ErrInvalidInput
	}

	borrowedAt := u.now().UTC()
	period := u.settings.BorrowPeriodDays(ctx)
	dueDate := dateOnly(borrowedAt).AddDate(0, 0, period)

	var sigRef string
	if in.Signature != "" {
		ref, err := u.signatures.Save(in.Signature, in.ReaderNo, in.BookTomNo, borrowedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: saving signature: %v", ErrDependency, err)
		}
		sigRef = ref
	}

	l := &loan.Loan{
		LoanID:       id.NewID32(),
		BookTomNo:    in.BookTomNo,
		ReaderNo:     in.ReaderNo,
		Open:         loan.OpenMarker(),
		BorrowedAt:   borrowedAt,
		DueDate:      dueDate,
		SignatureRef: sigRef,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		ok, err := r.Books.Exists(ctx, in.BookTomNo)
		if err != nil {
			return err
		}
		if !ok {
			return catalog.ErrNotFound
		}
		ok, err = r.Readers.Exists(ctx, in.ReaderNo)
		if err != nil {
			return err
		}
		if !ok {
			return reader.ErrNotFound
		}
		loaned, err := r.Loans.HasOpenByBook(ctx, in.BookTomNo)
		if err != nil {
			return err
		}
		if loaned {
			return loan.ErrBookUnavailable
		}
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		if sigRef != "" {
			_ = u.signatures.Remove(sigRef)
		}
		return nil, err
	}

	u.audit.Record(ctx, "borrow", fmt.Sprintf("book %s loaned to reader %s, due %s",
		in.BookTomNo, in.ReaderNo, dueDate.Format("2006-01-02")))
	return toDTO(l), nil
}

// Return closes an open loan and freezes the fine computed from the due
// date and the rate configured right now. A second call reports
// ErrAlreadyReturned and never recomputes the amount.
func (u *Usecase) Return(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if !l.IsOpen() {
			return loan.ErrAlreadyReturned
		}
		now := u.now().UTC()
		l.FineAmount = fine.Calculate(l.DueDate, now, u.settings.FinePerDay(ctx))
		l.ReturnedAt = &now
		l.Open = nil
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("book %s returned by reader %s", dto.BookTomNo, dto.ReaderNo)
	if dto.FineAmount > 0 {
		details += fmt.Sprintf(", fine %.2f assessed", dto.FineAmount)
	}
	u.audit.Record(ctx, "return", details)
	return dto, nil
}

// PayFine stamps the paid marker. Paying never alters the frozen amount,
// and only a closed loan with an unpaid positive fine qualifies.
func (u *Usecase) PayFine(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.IsOpen() || l.FineAmount <= 0 || l.FinePaidAt != nil {
			return loan.ErrNothingToPay
		}
		today := u.now().UTC()
		l.FinePaidAt = &today
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, "pay_fine",
		fmt.Sprintf("fine of %.2f on loan %s marked paid", dto.FineAmount, dto.LoanID))
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// ListBorrowed returns open loans with an indicative fine as of today. The
// per-row amount here is advisory; the binding amount is frozen at return.
func (u *Usecase) ListBorrowed(ctx context.Context, query string) ([]loan.BorrowedRow, error) {
	rows, err := u.loans.ListOpenDetailed(ctx)
	if err != nil {
		return nil, err
	}
	rate := u.settings.FinePerDay(ctx)
	today := u.now().UTC()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]loan.BorrowedRow, 0, len(rows))
	for _, row := range rows {
		if query != "" &&
			!strings.Contains(strings.ToLower(row.FullName), query) &&
			!strings.Contains(strings.ToLower(row.BookTomNo), query) {
			continue
		}
		row.Fine = fine.Calculate(row.DueDate, today, rate)
		out = append(out, row)
	}
	return out, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
