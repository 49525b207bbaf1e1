package simulado_test

import (
	"errors"
	"testing"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/simulado"
)

// TestAttempt_Validate tests validation of Attempt.
func TestAttempt_Validate(t *testing.T) {
	tests := []struct {
		name    string
		attempt simulado.Attempt
		wantErr error
	}{
		{
			name:    "valid attempt",
			attempt: simulado.Attempt{Date: "2024-06-19", Questions: 50, Correct: 38, Discipline: "Português"},
			wantErr: nil,
		},
		{
			name:    "valid without discipline",
			attempt: simulado.Attempt{Date: "2024-06-19", Questions: 10, Correct: 0},
			wantErr: nil,
		},
		{
			name:    "perfect score",
			attempt: simulado.Attempt{Date: "2024-06-19", Questions: 10, Correct: 10},
			wantErr: nil,
		},
		{
			name:    "empty date",
			attempt: simulado.Attempt{Date: "", Questions: 10, Correct: 5},
			wantErr: simulado.ErrInvalidDate,
		},
		{
			name:    "malformed date",
			attempt: simulado.Attempt{Date: "19/06/2024", Questions: 10, Correct: 5},
			wantErr: simulado.ErrInvalidDate,
		},
		{
			name:    "zero questions",
			attempt: simulado.Attempt{Date: "2024-06-19", Questions: 0, Correct: 0},
			wantErr: simulado.ErrInvalidQuestions,
		},
		{
			name:    "negative questions",
			attempt: simulado.Attempt{Date: "2024-06-19", Questions: -5, Correct: 0},
			wantErr: simulado.ErrInvalidQuestions,
		},
		{
			name:    "negative correct",
			attempt: simulado.Attempt{Date: "2024-06-19", Questions: 10, Correct: -1},
			wantErr: simulado.ErrInvalidCorrect,
		},
		{
			name:    "correct above questions",
			attempt: simulado.Attempt{Date: "2024-06-19", Questions: 10, Correct: 11},
			wantErr: simulado.ErrInvalidCorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attempt.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Attempt.Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestAttempt_Percent tests the score percentage.
func TestAttempt_Percent(t *testing.T) {
	tests := []struct {
		name    string
		attempt simulado.Attempt
		want    float64
	}{
		{"eight of ten", simulado.Attempt{Questions: 10, Correct: 8}, 80.0},
		{"half of twenty", simulado.Attempt{Questions: 20, Correct: 10}, 50.0},
		{"zero correct", simulado.Attempt{Questions: 40, Correct: 0}, 0.0},
		{"full marks", simulado.Attempt{Questions: 40, Correct: 40}, 100.0},
		{"thirds round trip", simulado.Attempt{Questions: 3, Correct: 1}, 100.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attempt.Percent(); got != tt.want {
				t.Errorf("Attempt.Percent() = %v, want %v", got, tt.want)
			}
		})
	}
}
