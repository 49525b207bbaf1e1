package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/profile"
	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/taf"
)

// TAFStoreForOrchestrator defines the store interface needed by TAF orchestrators.
type TAFStoreForOrchestrator interface {
	GetByDate(ctx context.Context, date string) (taf.Day, bool, error)
	ListAll(ctx context.Context) ([]taf.Day, error)
	ListAsc(ctx context.Context) ([]taf.Day, error)
	Save(ctx context.Context, d taf.Day) error
	UpdateBMI(ctx context.Context, date string, bmi float64) error
	DeleteByDate(ctx context.Context, date string) error
	DeleteRange(ctx context.Context, from, to string) error
}

// ProfileReader defines the profile store interface needed by TAF orchestrators.
type ProfileReader interface {
	Get(ctx context.Context) (profile.Record, bool, error)
}

// --- Record TAF Day ---

// RecordTAFDayInput carries one fitness submission. Nil fields were left
// blank on the form and preserve whatever is already stored for that date.
type RecordTAFDayInput struct {
	Date      string // empty defaults to today
	RunningKM *float64
	Pushups   *int
	Situps    *int
	Pullups   *int
	Weight    *float64
}

// RecordTAFDayDeps holds dependencies for RecordTAFDay.
type RecordTAFDayDeps struct {
	TAFStore     TAFStoreForOrchestrator
	ProfileStore ProfileReader
	Now          func() time.Time
}

// ExecuteRecordTAFDay upserts a fitness day with field-level coalesce: the
// stored row is loaded, merged with the submission, and written back. When
// the submission carries a weight, the body-mass index is recomputed from
// the live profile height after the row write and persisted, so a height
// change is always reflected in later recordings.
// PRE: Date (when set) parses strictly as YYYY-MM-DD
// POST: the row for the date holds the merged fields; bmi matches the
// stored weight whenever this submission set one
func ExecuteRecordTAFDay(ctx context.Context, input RecordTAFDayInput, deps RecordTAFDayDeps) (taf.Day, error) {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = deps.Now().Format(calendar.DateFormat)
	}
	if !calendar.ValidDate(date) {
		return taf.Day{}, taf.ErrInvalidDate
	}

	stored, _, err := deps.TAFStore.GetByDate(ctx, date)
	if err != nil {
		return taf.Day{}, fmt.Errorf("load taf day %s: %w", date, err)
	}
	merged := stored.Merge(taf.Day{
		Date:      date,
		RunningKM: input.RunningKM,
		Pushups:   input.Pushups,
		Situps:    input.Situps,
		Pullups:   input.Pullups,
		Weight:    input.Weight,
	})
	if err := deps.TAFStore.Save(ctx, merged); err != nil {
		return taf.Day{}, fmt.Errorf("save taf day %s: %w", date, err)
	}

	if input.Weight != nil {
		rec, _, err := deps.ProfileStore.Get(ctx)
		if err != nil {
			return taf.Day{}, fmt.Errorf("load profile: %w", err)
		}
		bmi, err := taf.BMIFor(*input.Weight, rec.Resolve().HeightM)
		if err != nil {
			return taf.Day{}, err
		}
		if err := deps.TAFStore.UpdateBMI(ctx, date, bmi); err != nil {
			return taf.Day{}, fmt.Errorf("update bmi for %s: %w", date, err)
		}
		merged.BMI = &bmi
	}

	slog.Info("taf_event", "event", "taf_day_recorded", "date", date, "weight_set", input.Weight != nil)
	return merged, nil
}

// --- View TAF Log ---

// TAFLog is the fitness listing view-model: every recorded day, most
// recent first, plus the resolved profile and derived age.
type TAFLog struct {
	Days    []taf.Day
	Profile profile.Profile
	Age     int
}

// ViewTAFLogDeps holds dependencies for ViewTAFLog.
type ViewTAFLogDeps struct {
	TAFStore     TAFStoreForOrchestrator
	ProfileStore ProfileReader
	Now          func() time.Time
}

// ExecuteViewTAFLog loads the fitness log with the profile. Age is derived
// from the birthdate at call time, never stored.
// POST: Days is never nil
func ExecuteViewTAFLog(ctx context.Context, deps ViewTAFLogDeps) (TAFLog, error) {
	days, err := deps.TAFStore.ListAll(ctx)
	if err != nil {
		return TAFLog{}, fmt.Errorf("list taf days: %w", err)
	}
	if days == nil {
		days = []taf.Day{}
	}

	rec, _, err := deps.ProfileStore.Get(ctx)
	if err != nil {
		return TAFLog{}, fmt.Errorf("load profile: %w", err)
	}
	p := rec.Resolve()
	age, err := profile.AgeAt(p.Birthdate, deps.Now())
	if err != nil {
		return TAFLog{}, err
	}

	return TAFLog{Days: days, Profile: p, Age: age}, nil
}

// --- Chart Data ---

// TAFChartDeps holds dependencies for TAFChartData.
type TAFChartDeps struct {
	TAFStore TAFStoreForOrchestrator
}

// ExecuteTAFChartData projects the fitness log onto one metric for the
// chart endpoint, dates ascending. Unknown metric names fall back to BMI.
// POST: labels and values have equal length, never nil
func ExecuteTAFChartData(ctx context.Context, metric string, deps TAFChartDeps) (taf.Series, error) {
	days, err := deps.TAFStore.ListAsc(ctx)
	if err != nil {
		return taf.Series{}, fmt.Errorf("list taf days: %w", err)
	}
	return taf.BuildSeries(days, metric), nil
}

// --- Deletes ---

// DeleteTAFDeps holds dependencies for the TAF delete orchestrators.
type DeleteTAFDeps struct {
	TAFStore TAFStoreForOrchestrator
}

// ExecuteDeleteTAFDay removes the fitness day for one date. Absent dates
// are a no-op.
// PRE: date parses strictly as YYYY-MM-DD, checked before any store access
// POST: no fitness row exists for the date
func ExecuteDeleteTAFDay(ctx context.Context, date string, deps DeleteTAFDeps) error {
	if !calendar.ValidDate(date) {
		return taf.ErrInvalidDate
	}
	if err := deps.TAFStore.DeleteByDate(ctx, date); err != nil {
		return fmt.Errorf("delete taf day %s: %w", date, err)
	}
	slog.Info("taf_event", "event", "taf_day_deleted", "date", date)
	return nil
}

// ExecuteDeleteTAFRange removes every fitness day in [from, to] inclusive.
// Both bounds are validated before any store access; an invalid bound
// fails the whole operation with nothing deleted.
// POST: rows outside the range are untouched
func ExecuteDeleteTAFRange(ctx context.Context, from, to string, deps DeleteTAFDeps) error {
	if !calendar.ValidDate(from) || !calendar.ValidDate(to) {
		return taf.ErrInvalidDate
	}
	if err := deps.TAFStore.DeleteRange(ctx, from, to); err != nil {
		return fmt.Errorf("delete taf range %s..%s: %w", from, to, err)
	}
	slog.Info("taf_event", "event", "taf_range_deleted", "from", from, "to", to)
	return nil
}
