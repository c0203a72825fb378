// Package circmock holds function-backed fakes for the collaborators of
// the circulation and readers usecases.
package circmock

import (
	"context"
	"sync"
	"time"

	"library-backend/internal/domain/catalog"
	"library-backend/internal/domain/reader"
	"library-backend/internal/domain/settings"
)

// BookRepo satisfies catalog.Repository.
type BookRepo struct {
	CreateFn        func(ctx context.Context, b *catalog.Book) error
	GetByTomNoFn    func(ctx context.Context, tomNo string) (*catalog.Book, error)
	ExistsFn        func(ctx context.Context, tomNo string) (bool, error)
	ListAvailableFn func(ctx context.Context) ([]catalog.Book, error)
}

var _ catalog.Repository = (*BookRepo)(nil)

func (m *BookRepo) Create(ctx context.Context, b *catalog.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *BookRepo) GetByTomNo(ctx context.Context, tomNo string) (*catalog.Book, error) {
	if m.GetByTomNoFn != nil {
		return m.GetByTomNoFn(ctx, tomNo)
	}
	return nil, catalog.ErrNotFound
}

func (m *BookRepo) Exists(ctx context.Context, tomNo string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, tomNo)
	}
	return true, nil
}

func (m *BookRepo) ListAvailable(ctx context.Context) ([]catalog.Book, error) {
	if m.ListAvailableFn != nil {
		return m.ListAvailableFn(ctx)
	}
	return nil, nil
}

// ReaderRepo satisfies reader.Repository.
type ReaderRepo struct {
	CreateFn        func(ctx context.Context, r *reader.Reader) error
	GetByReaderNoFn func(ctx context.Context, readerNo string) (*reader.Reader, error)
	ExistsFn        func(ctx context.Context, readerNo string) (bool, error)
	DeleteFn        func(ctx context.Context, readerNo string) error
}

var _ reader.Repository = (*ReaderRepo)(nil)

func (m *ReaderRepo) Create(ctx context.Context, r *reader.Reader) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *ReaderRepo) GetByReaderNo(ctx context.Context, readerNo string) (*reader.Reader, error) {
	if m.GetByReaderNoFn != nil {
		return m.GetByReaderNoFn(ctx, readerNo)
	}
	return nil, reader.ErrNotFound
}

func (m *ReaderRepo) Exists(ctx context.Context, readerNo string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, readerNo)
	}
	return true, nil
}

func (m *ReaderRepo) Delete(ctx context.Context, readerNo string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, readerNo)
	}
	return nil
}

// MemSettings is a map-backed settings.Repository.
type MemSettings struct {
	mu     sync.Mutex
	values map[string]settings.Setting
}

var _ settings.Repository = (*MemSettings)(nil)

func NewMemSettings(values map[string]string) *MemSettings {
	m := &MemSettings{values: make(map[string]settings.Setting)}
	for k, v := range values {
		m.values[k] = settings.Setting{Key: k, Value: v}
	}
	return m
}

func (m *MemSettings) Get(_ context.Context, key string) (*settings.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.values[key]
	if !ok {
		return nil, settings.ErrNotFound
	}
	return &s, nil
}

func (m *MemSettings) List(_ context.Context) ([]settings.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]settings.Setting, 0, len(m.values))
	for _, s := range m.values {
		out = append(out, s)
	}
	return out, nil
}

func (m *MemSettings) Upsert(_ context.Context, s *settings.Setting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.values[s.Key]
	if ok && s.Description == "" {
		s.Description = cur.Description
	}
	m.values[s.Key] = *s
	return nil
}

// SigStore satisfies circulation.SignatureStore.
type SigStore struct {
	SaveFn   func(dataURL, readerNo, bookTomNo string, at time.Time) (string, error)
	RemoveFn func(ref string) error
	Removed  []string
}

func (m *SigStore) Save(dataURL, readerNo, bookTomNo string, at time.Time) (string, error) {
	if m.SaveFn != nil {
		return m.SaveFn(dataURL, readerNo, bookTomNo, at)
	}
	return "sig.png", nil
}

func (m *SigStore) Remove(ref string) error {
	m.Removed = append(m.Removed, ref)
	if m.RemoveFn != nil {
		return m.RemoveFn(ref)
	}
	return nil
}

// Sink records activity calls for assertions.
type Sink struct {
	mu      sync.Mutex
	Actions []string
}

func (s *Sink) Record(_ context.Context, action, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Actions = append(s.Actions, action)
}
