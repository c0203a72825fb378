package reader

import "context"

type Repository interface {
	Create(ctx context.Context, r *Reader) error
	GetByReaderNo(ctx context.Context, readerNo string) (*Reader, error)
	Exists(ctx context.Context, readerNo string) (bool, error)
	Delete(ctx context.Context, readerNo string) error
}
