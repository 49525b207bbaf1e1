package simulado

import (
	"errors"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
)

// Domain errors
var (
	ErrInvalidDate      = errors.New("date must be a valid YYYY-MM-DD date")
	ErrInvalidQuestions = errors.New("question count must be greater than zero")
	ErrInvalidCorrect   = errors.New("correct count must be between zero and the question count")
)

// Attempt is one recorded practice exam sitting.
type Attempt struct {
	ID         int64
	Date       string
	Questions  int
	Correct    int
	Discipline string
}

// Validate checks if the Attempt has valid data.
// PRE: Attempt struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Attempt) Validate() error {
	if !calendar.ValidDate(a.Date) {
		return ErrInvalidDate
	}
	if a.Questions <= 0 {
		return ErrInvalidQuestions
	}
	if a.Correct < 0 || a.Correct > a.Questions {
		return ErrInvalidCorrect
	}
	return nil
}

// Percent returns the score as a percentage of the question count.
// PRE: Questions > 0
func (a *Attempt) Percent() float64 {
	return 100.0 * float64(a.Correct) / float64(a.Questions)
}
