package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/simulado"
)

// mockSimuladoStore implements SimuladoStoreForOrchestrator for testing.
type mockSimuladoStore struct {
	attempts []simulado.Attempt
	nextID   int64
}

func (m *mockSimuladoStore) Insert(_ context.Context, a simulado.Attempt) (int64, error) {
	m.nextID++
	a.ID = m.nextID
	m.attempts = append(m.attempts, a)
	return a.ID, nil
}

func (m *mockSimuladoStore) ListAll(_ context.Context) ([]simulado.Attempt, error) {
	return m.attempts, nil
}

func (m *mockSimuladoStore) DeleteByID(_ context.Context, id int64) error {
	var kept []simulado.Attempt
	for _, a := range m.attempts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	m.attempts = kept
	return nil
}

func (m *mockSimuladoStore) DeleteByDate(_ context.Context, date string) error {
	var kept []simulado.Attempt
	for _, a := range m.attempts {
		if a.Date != date {
			kept = append(kept, a)
		}
	}
	m.attempts = kept
	return nil
}

var simuladoNow = func() time.Time { return time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC) }

// --- ExecuteAddSimulado tests ---

func TestExecuteAddSimulado_Valid(t *testing.T) {
	store := &mockSimuladoStore{}
	a, err := ExecuteAddSimulado(context.Background(), AddSimuladoInput{
		Date:       "2026-05-01",
		Questions:  10,
		Correct:    8,
		Discipline: "  portugues ",
	}, AddSimuladoDeps{SimuladoStore: store, Now: simuladoNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 1 {
		t.Errorf("expected assigned id 1, got %d", a.ID)
	}
	if a.Discipline != "portugues" {
		t.Errorf("expected trimmed discipline, got %q", a.Discipline)
	}
	if len(store.attempts) != 1 {
		t.Fatal("expected attempt persisted")
	}
}

func TestExecuteAddSimulado_DefaultsDateToToday(t *testing.T) {
	store := &mockSimuladoStore{}
	a, err := ExecuteAddSimulado(context.Background(), AddSimuladoInput{
		Questions: 10,
		Correct:   5,
	}, AddSimuladoDeps{SimuladoStore: store, Now: simuladoNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Date != "2026-05-20" {
		t.Errorf("expected today's date, got %q", a.Date)
	}
}

func TestExecuteAddSimulado_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   AddSimuladoInput
		wantErr error
	}{
		{"zero questions", AddSimuladoInput{Date: "2026-05-01", Questions: 0, Correct: 0}, simulado.ErrInvalidQuestions},
		{"negative correct", AddSimuladoInput{Date: "2026-05-01", Questions: 10, Correct: -1}, simulado.ErrInvalidCorrect},
		{"correct above questions", AddSimuladoInput{Date: "2026-05-01", Questions: 10, Correct: 11}, simulado.ErrInvalidCorrect},
		{"malformed date", AddSimuladoInput{Date: "2024-13-40", Questions: 10, Correct: 5}, simulado.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockSimuladoStore{}
			_, err := ExecuteAddSimulado(context.Background(), tt.input,
				AddSimuladoDeps{SimuladoStore: store, Now: simuladoNow})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(store.attempts) != 0 {
				t.Error("expected nothing persisted after validation failure")
			}
		})
	}
}

// --- ExecuteListSimulados tests ---

func TestExecuteListSimulados_Stats(t *testing.T) {
	store := &mockSimuladoStore{attempts: []simulado.Attempt{
		{ID: 1, Date: "2026-05-01", Questions: 10, Correct: 8},
		{ID: 2, Date: "2026-05-02", Questions: 20, Correct: 10},
	}}
	log, err := ExecuteListSimulados(context.Background(), ListSimuladosDeps{SimuladoStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Stats.Count != 2 {
		t.Errorf("expected count 2, got %d", log.Stats.Count)
	}
	if log.Stats.Avg != 65.0 {
		t.Errorf("expected avg 65.0, got %v", log.Stats.Avg)
	}
	if log.Stats.Best != 80.0 || log.Stats.Worst != 50.0 {
		t.Errorf("expected best 80.0 worst 50.0, got %v/%v", log.Stats.Best, log.Stats.Worst)
	}
}

func TestExecuteListSimulados_Empty(t *testing.T) {
	log, err := ExecuteListSimulados(context.Background(), ListSimuladosDeps{SimuladoStore: &mockSimuladoStore{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Attempts == nil {
		t.Error("expected non-nil attempts slice")
	}
	if log.Stats.Count != 0 || log.Stats.Avg != 0.0 || log.Stats.Best != 0.0 || log.Stats.Worst != 0.0 {
		t.Errorf("expected zeroed stats on empty log, got %+v", log.Stats)
	}
}

// --- Delete tests ---

func TestExecuteDeleteSimuladosByDate_InvalidDate(t *testing.T) {
	store := &mockSimuladoStore{attempts: []simulado.Attempt{
		{ID: 1, Date: "2026-05-01", Questions: 10, Correct: 8},
	}}
	err := ExecuteDeleteSimuladosByDate(context.Background(), "not-a-date",
		DeleteSimuladoDeps{SimuladoStore: store})
	if !errors.Is(err, simulado.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if len(store.attempts) != 1 {
		t.Error("expected storage untouched after invalid date")
	}
}

func TestExecuteDeleteSimuladosByDate_Valid(t *testing.T) {
	store := &mockSimuladoStore{attempts: []simulado.Attempt{
		{ID: 1, Date: "2026-05-01", Questions: 10, Correct: 8},
		{ID: 2, Date: "2026-05-01", Questions: 20, Correct: 10},
		{ID: 3, Date: "2026-05-02", Questions: 10, Correct: 9},
	}}
	if err := ExecuteDeleteSimuladosByDate(context.Background(), "2026-05-01",
		DeleteSimuladoDeps{SimuladoStore: store}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.attempts) != 1 || store.attempts[0].ID != 3 {
		t.Errorf("expected only attempt 3 to survive, got %+v", store.attempts)
	}
}

func TestExecuteDeleteSimulado(t *testing.T) {
	store := &mockSimuladoStore{attempts: []simulado.Attempt{
		{ID: 1, Date: "2026-05-01", Questions: 10, Correct: 8},
	}}
	if err := ExecuteDeleteSimulado(context.Background(), 1, DeleteSimuladoDeps{SimuladoStore: store}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.attempts) != 0 {
		t.Error("expected attempt deleted")
	}
}
