package taf

import (
	"context"

	domain "github.com/rhenandrew/Bombeiro-Militar/internal/domain/taf"
)

// Store persists FitnessDay state.
type Store interface {
	GetByDate(ctx context.Context, date string) (domain.Day, bool, error)
	ListAll(ctx context.Context) ([]domain.Day, error)
	ListAsc(ctx context.Context) ([]domain.Day, error)
	Save(ctx context.Context, d domain.Day) error
	UpdateBMI(ctx context.Context, date string, bmi float64) error
	DeleteByDate(ctx context.Context, date string) error
	DeleteRange(ctx context.Context, from, to string) error
}
