package settings

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	List(ctx context.Context) ([]Setting, error)
	// Upsert creates the row or overwrites its value, keeping the description.
	Upsert(ctx context.Context, s *Setting) error
}
