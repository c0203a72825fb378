package catalog

import (
	"context"
	"errors"
	"fmt"

	"library-backend/internal/domain/activity"
	catalogDomain "library-backend/internal/domain/catalog"
)

var ErrInvalidInput = errors.New("tom number and title are required")

type AddBookInput struct {
	TomNo  string  `json:"tom_no"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
}

type Usecase struct {
	books catalogDomain.Repository
	audit activity.Sink
}

func NewUsecase(books catalogDomain.Repository, audit activity.Sink) *Usecase {
	return &Usecase{books: books, audit: audit}
}

func (u *Usecase) Add(ctx context.Context, in AddBookInput) (*catalogDomain.Book, error) {
	if in.TomNo == "" || in.Title == "" {
		return nil, ErrInvalidInput
	}
	b := &catalogDomain.Book{
		TomNo:  in.TomNo,
		Title:  in.Title,
		Author: in.Author,
		Year:   in.Year,
		Price:  in.Price,
	}
	if err := u.books.Create(ctx, b); err != nil {
		return nil, err
	}
	u.audit.Record(ctx, "add_book", fmt.Sprintf("book %q (tom %s) added", in.Title, in.TomNo))
	return b, nil
}

func (u *Usecase) ListAvailable(ctx context.Context) ([]catalogDomain.Book, error) {
	return u.books.ListAvailable(ctx)
}
