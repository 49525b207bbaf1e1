package taf

import (
	"errors"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
)

// Domain errors
var (
	ErrInvalidDate   = errors.New("date must be a valid YYYY-MM-DD date")
	ErrInvalidHeight = errors.New("height must be greater than zero")
)

// Day is one fitness test day. Nil fields were never recorded; the
// running duration column is kept for older databases but no write
// path fills it.
type Day struct {
	Date           string
	RunningKM      *float64
	RunningMinutes *int
	Pushups        *int
	Situps         *int
	Pullups        *int
	Weight         *float64
	BMI            *float64
}

// Validate checks if the Day has valid data.
// POST: Returns nil if valid, error otherwise
func (d *Day) Validate() error {
	if !calendar.ValidDate(d.Date) {
		return ErrInvalidDate
	}
	return nil
}

// Merge overlays an incoming submission on the stored day, field by
// field: an incoming nil preserves the stored value, anything else
// replaces it. Neither operand is mutated.
// POST: result.Date is the incoming date when set, the stored one
// otherwise
func (d Day) Merge(in Day) Day {
	out := d
	if in.Date != "" {
		out.Date = in.Date
	}
	if in.RunningKM != nil {
		out.RunningKM = in.RunningKM
	}
	if in.RunningMinutes != nil {
		out.RunningMinutes = in.RunningMinutes
	}
	if in.Pushups != nil {
		out.Pushups = in.Pushups
	}
	if in.Situps != nil {
		out.Situps = in.Situps
	}
	if in.Pullups != nil {
		out.Pullups = in.Pullups
	}
	if in.Weight != nil {
		out.Weight = in.Weight
	}
	if in.BMI != nil {
		out.BMI = in.BMI
	}
	return out
}

// BMIFor derives the body-mass index from a weight in kilograms and a
// height in metres.
// PRE: heightM > 0
func BMIFor(weightKG, heightM float64) (float64, error) {
	if heightM <= 0 {
		return 0, ErrInvalidHeight
	}
	return weightKG / (heightM * heightM), nil
}
