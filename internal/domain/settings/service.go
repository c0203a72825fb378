package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Service exposes typed accessors over the settings table. Values are read
// at call time, so changing a setting affects only future borrows and fine
// computations, never frozen amounts.
type Service struct{ repo Repository }

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) get(ctx context.Context, key, fallback string) string {
	row, err := s.repo.Get(ctx, key)
	if err != nil || row.Value == "" {
		return fallback
	}
	return row.Value
}

func (s *Service) BorrowPeriodDays(ctx context.Context) int {
	raw := s.get(ctx, KeyBorrowPeriodDays, strconv.Itoa(DefaultBorrowPeriodDays))
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return DefaultBorrowPeriodDays
	}
	return n
}

func (s *Service) FinePerDay(ctx context.Context) float64 {
	raw := s.get(ctx, KeyFinePerDay, strconv.FormatFloat(DefaultFinePerDay, 'f', 2, 64))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return DefaultFinePerDay
	}
	return f
}

func (s *Service) List(ctx context.Context) ([]Setting, error) {
	return s.repo.List(ctx)
}

// Update validates and stores the known keys; unknown keys are rejected so
// the admin surface cannot grow settings the code never reads.
func (s *Service) Update(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		switch key {
		case KeyBorrowPeriodDays:
			if n, err := strconv.Atoi(value); err != nil || n <= 0 {
				return fmt.Errorf("%s must be a positive integer, got %q", key, value)
			}
		case KeyFinePerDay:
			if f, err := strconv.ParseFloat(value, 64); err != nil || f < 0 {
				return fmt.Errorf("%s must be a non-negative number, got %q", key, value)
			}
		default:
			return fmt.Errorf("unknown setting %q", key)
		}
	}
	for key, value := range values {
		if err := s.repo.Upsert(ctx, &Setting{Key: key, Value: value}); err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts the canonical defaults for keys that are missing.
func (s *Service) Seed(ctx context.Context) error {
	defaults := []Setting{
		{Key: KeyBorrowPeriodDays, Value: strconv.Itoa(DefaultBorrowPeriodDays), Description: "Borrow period in days"},
		{Key: KeyFinePerDay, Value: strconv.FormatFloat(DefaultFinePerDay, 'f', 2, 64), Description: "Overdue fine per day"},
	}
	for i := range defaults {
		_, err := s.repo.Get(ctx, defaults[i].Key)
		switch {
		case err == nil:
			continue
		case errors.Is(err, ErrNotFound):
			if err := s.repo.Upsert(ctx, &defaults[i]); err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

// Validate fails fast when a stored value cannot be parsed, instead of
// silently falling back to a default that may disagree with what an admin
// believes is configured.
func (s *Service) Validate(ctx context.Context) error {
	if row, err := s.repo.Get(ctx, KeyBorrowPeriodDays); err == nil {
		if n, err := strconv.Atoi(row.Value); err != nil || n <= 0 {
			return fmt.Errorf("stored %s %q is not a positive integer", KeyBorrowPeriodDays, row.Value)
		}
	}
	if row, err := s.repo.Get(ctx, KeyFinePerDay); err == nil {
		if f, err := strconv.ParseFloat(row.Value, 64); err != nil || f < 0 {
			return fmt.Errorf("stored %s %q is not a non-negative number", KeyFinePerDay, row.Value)
		}
	}
	return nil
}
