package profile

import (
	"context"

	domain "github.com/rhenandrew/Bombeiro-Militar/internal/domain/profile"
)

// Store persists the singleton Profile.
type Store interface {
	Get(ctx context.Context) (domain.Record, bool, error)
	Insert(ctx context.Context, p domain.Profile) error
	SetHeight(ctx context.Context, heightM float64) error
	SetBirthdate(ctx context.Context, birthdate string) error
}
