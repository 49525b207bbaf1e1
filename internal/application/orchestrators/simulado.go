package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/simulado"
)

// SimuladoStoreForOrchestrator defines the store interface needed by simulado orchestrators.
type SimuladoStoreForOrchestrator interface {
	Insert(ctx context.Context, a simulado.Attempt) (int64, error)
	ListAll(ctx context.Context) ([]simulado.Attempt, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByDate(ctx context.Context, date string) error
}

// --- Add Simulado ---

// AddSimuladoInput carries one practice-exam sitting.
type AddSimuladoInput struct {
	Date       string
	Questions  int
	Correct    int
	Discipline string
}

// AddSimuladoDeps holds dependencies for AddSimulado.
type AddSimuladoDeps struct {
	SimuladoStore SimuladoStoreForOrchestrator
	Now           func() time.Time
}

// ExecuteAddSimulado validates and records a practice-exam attempt.
// An empty date defaults to today.
// PRE: Questions > 0 and 0 <= Correct <= Questions; violations reject the
// write with nothing persisted
// POST: attempt stored with its assigned id
func ExecuteAddSimulado(ctx context.Context, input AddSimuladoInput, deps AddSimuladoDeps) (simulado.Attempt, error) {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = deps.Now().Format(calendar.DateFormat)
	}

	a := simulado.Attempt{
		Date:       date,
		Questions:  input.Questions,
		Correct:    input.Correct,
		Discipline: strings.TrimSpace(input.Discipline),
	}
	if err := a.Validate(); err != nil {
		return simulado.Attempt{}, err
	}

	id, err := deps.SimuladoStore.Insert(ctx, a)
	if err != nil {
		return simulado.Attempt{}, fmt.Errorf("insert simulado: %w", err)
	}
	a.ID = id

	slog.Info("simulado_event", "event", "simulado_added", "id", id, "date", a.Date, "score_pct", a.Percent())
	return a, nil
}

// --- List Simulados ---

// SimuladoLog is the listing view-model: every attempt, most recent first,
// plus the aggregate statistics.
type SimuladoLog struct {
	Attempts []simulado.Attempt
	Stats    simulado.Stats
}

// ListSimuladosDeps holds dependencies for ListSimulados.
type ListSimuladosDeps struct {
	SimuladoStore SimuladoStoreForOrchestrator
}

// ExecuteListSimulados loads the full exam log with aggregate stats.
// POST: Attempts is never nil; an empty log yields zeroed stats
func ExecuteListSimulados(ctx context.Context, deps ListSimuladosDeps) (SimuladoLog, error) {
	attempts, err := deps.SimuladoStore.ListAll(ctx)
	if err != nil {
		return SimuladoLog{}, fmt.Errorf("list simulados: %w", err)
	}
	if attempts == nil {
		attempts = []simulado.Attempt{}
	}
	return SimuladoLog{
		Attempts: attempts,
		Stats:    simulado.ComputeStats(attempts),
	}, nil
}

// --- Delete Simulado ---

// DeleteSimuladoDeps holds dependencies for the delete orchestrators.
type DeleteSimuladoDeps struct {
	SimuladoStore SimuladoStoreForOrchestrator
}

// ExecuteDeleteSimulado removes one attempt by id. Unknown ids are a no-op.
// POST: no attempt with the given id remains
func ExecuteDeleteSimulado(ctx context.Context, id int64, deps DeleteSimuladoDeps) error {
	if err := deps.SimuladoStore.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete simulado %d: %w", id, err)
	}
	slog.Info("simulado_event", "event", "simulado_deleted", "id", id)
	return nil
}

// ExecuteDeleteSimuladosByDate removes every attempt on one date.
// PRE: date parses strictly as YYYY-MM-DD, checked before any store access
// POST: no attempt with the given date remains
func ExecuteDeleteSimuladosByDate(ctx context.Context, date string, deps DeleteSimuladoDeps) error {
	if !calendar.ValidDate(date) {
		return simulado.ErrInvalidDate
	}
	if err := deps.SimuladoStore.DeleteByDate(ctx, date); err != nil {
		return fmt.Errorf("delete simulados on %s: %w", date, err)
	}
	slog.Info("simulado_event", "event", "simulados_deleted_by_date", "date", date)
	return nil
}
