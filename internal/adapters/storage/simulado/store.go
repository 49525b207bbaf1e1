package simulado

import (
	"context"

	domain "github.com/rhenandrew/Bombeiro-Militar/internal/domain/simulado"
)

// Store persists ExamAttempt state.
type Store interface {
	Insert(ctx context.Context, a domain.Attempt) (int64, error)
	ListAll(ctx context.Context) ([]domain.Attempt, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByDate(ctx context.Context, date string) error
}
