package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/profile"
)

// ProfileStoreForOrchestrator defines the store interface needed by the profile seeder.
type ProfileStoreForOrchestrator interface {
	Get(ctx context.Context) (profile.Record, bool, error)
	Insert(ctx context.Context, p profile.Profile) error
	SetHeight(ctx context.Context, heightM float64) error
	SetBirthdate(ctx context.Context, birthdate string) error
}

// SeedProfileDeps holds dependencies for SeedProfile.
type SeedProfileDeps struct {
	ProfileStore ProfileStoreForOrchestrator
}

// ExecuteSeedProfile ensures the singleton profile row exists and is
// complete. A missing row is created with the defaults; NULL fields on an
// existing row are backfilled from the same defaults. Fields that already
// hold a value are never overwritten. Safe to run on every startup.
// POST: the profile row exists with non-NULL height and birthdate
func ExecuteSeedProfile(ctx context.Context, deps SeedProfileDeps) error {
	rec, found, err := deps.ProfileStore.Get(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	if !found {
		if err := deps.ProfileStore.Insert(ctx, profile.Default()); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		slog.Info("profile_event", "event", "profile_seeded")
		return nil
	}

	if rec.HeightM == nil {
		if err := deps.ProfileStore.SetHeight(ctx, profile.DefaultHeightM); err != nil {
			return fmt.Errorf("backfill height: %w", err)
		}
		slog.Info("profile_event", "event", "profile_height_backfilled")
	}
	if rec.Birthdate == nil {
		if err := deps.ProfileStore.SetBirthdate(ctx, profile.DefaultBirthdate); err != nil {
			return fmt.Errorf("backfill birthdate: %w", err)
		}
		slog.Info("profile_event", "event", "profile_birthdate_backfilled")
	}
	return nil
}
