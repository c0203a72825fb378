package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByTomNo(ctx context.Context, tomNo string) (*Book, error)
	Exists(ctx context.Context, tomNo string) (bool, error)
	// ListAvailable returns books with no open loan, ordered by title.
	ListAvailable(ctx context.Context) ([]Book, error)
}
