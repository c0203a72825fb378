package readers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"library-backend/internal/domain/activity"
	"library-backend/internal/domain/loan"
	readerDomain "library-backend/internal/domain/reader"
)

var ErrInvalidInput = errors.New("reader number and full name are required")

type RegisterInput struct {
	ReaderNo string `json:"reader_no"`
	FullName string `json:"full_name"`
}

// Details is the reader-details aggregate: the reader plus their current
// borrows, unpaid fines and full borrow history.
type Details struct {
	Reader         *readerDomain.Reader `json:"reader"`
	CurrentBorrows []loan.HistoryRow    `json:"current_borrows"`
	UnpaidFines    []loan.HistoryRow    `json:"unpaid_fines"`
	History        []loan.HistoryRow    `json:"history"`
}

type Usecase struct {
	readers readerDomain.Repository
	loans   loan.Repository
	audit   activity.Sink
	now     func() time.Time
}

func NewUsecase(r readerDomain.Repository, loans loan.Repository, audit activity.Sink) *Usecase {
	return &Usecase{readers: r, loans: loans, audit: audit, now: time.Now}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*readerDomain.Reader, error) {
	if in.ReaderNo == "" || in.FullName == "" {
		return nil, ErrInvalidInput
	}
	r := &readerDomain.Reader{
		ReaderNo:             in.ReaderNo,
		FullName:             in.FullName,
		LastRegistrationYear: u.now().UTC().Year(),
	}
	if err := u.readers.Create(ctx, r); err != nil {
		return nil, err
	}
	u.audit.Record(ctx, "add_reader", fmt.Sprintf("reader %q (no %s) registered", in.FullName, in.ReaderNo))
	return r, nil
}

// Delete removes a reader unless they still hold an open loan. The guard
// is a business rule checked here, not a storage cascade.
func (u *Usecase) Delete(ctx context.Context, readerNo string) error {
	r, err := u.readers.GetByReaderNo(ctx, readerNo)
	if err != nil {
		return err
	}
	open, err := u.loans.CountOpenByReader(ctx, readerNo)
	if err != nil {
		return err
	}
	if open > 0 {
		return readerDomain.ErrHasOpenLoans
	}
	if err := u.readers.Delete(ctx, readerNo); err != nil {
		return err
	}
	u.audit.Record(ctx, "delete_reader", fmt.Sprintf("reader %q (no %s) deleted", r.FullName, readerNo))
	return nil
}

func (u *Usecase) Details(ctx context.Context, readerNo string) (*Details, error) {
	r, err := u.readers.GetByReaderNo(ctx, readerNo)
	if err != nil {
		return nil, err
	}
	history, err := u.loans.ListByReader(ctx, readerNo)
	if err != nil {
		return nil, err
	}
	d := &Details{
		Reader:         r,
		CurrentBorrows: []loan.HistoryRow{},
		UnpaidFines:    []loan.HistoryRow{},
		History:        history,
	}
	for _, row := range history {
		if row.ReturnedAt == nil {
			d.CurrentBorrows = append(d.CurrentBorrows, row)
		} else if row.FineAmount > 0 && row.FinePaidAt == nil {
			d.UnpaidFines = append(d.UnpaidFines, row)
		}
	}
	return d, nil
}
