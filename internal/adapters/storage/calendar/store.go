package calendar

import (
	"context"

	domain "github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
)

// Store persists CalendarDay state.
type Store interface {
	GetByDate(ctx context.Context, date string) (domain.Day, bool, error)
	ListRange(ctx context.Context, from, to string) ([]domain.Day, error)
	SaveMonth(ctx context.Context, days []domain.Day) error
	DeleteByDate(ctx context.Context, date string) error
}
