package profile

import (
	"errors"
	"time"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
)

// Domain errors
var (
	ErrInvalidHeight    = errors.New("height must be greater than zero")
	ErrInvalidBirthdate = errors.New("birthdate must be a valid YYYY-MM-DD date")
)

// Seed values written when the database has no profile row yet.
const (
	DefaultHeightM   = 1.71
	DefaultBirthdate = "1999-06-19"
)

// Profile holds the single user's fixed measurements. The store keeps
// exactly one row for it.
type Profile struct {
	HeightM   float64
	Birthdate string
}

// Default returns the profile seeded on first run.
func Default() Profile {
	return Profile{HeightM: DefaultHeightM, Birthdate: DefaultBirthdate}
}

// Record is the stored shape of the profile row. A nil field was never
// set, which the seeding step distinguishes from a real value so it can
// backfill without overwriting.
type Record struct {
	HeightM   *float64
	Birthdate *string
}

// Resolve returns a complete Profile, falling back to the seed defaults
// for any unset field.
func (r Record) Resolve() Profile {
	p := Default()
	if r.HeightM != nil {
		p.HeightM = *r.HeightM
	}
	if r.Birthdate != nil {
		p.Birthdate = *r.Birthdate
	}
	return p
}

// Validate checks if the Profile has valid data.
// POST: Returns nil if valid, error otherwise
func (p *Profile) Validate() error {
	if p.HeightM <= 0 {
		return ErrInvalidHeight
	}
	if !calendar.ValidDate(p.Birthdate) {
		return ErrInvalidBirthdate
	}
	return nil
}

// AgeAt returns full years completed from the birth date to the given
// day. The year counter only ticks once the birthday has passed.
func AgeAt(birthdate string, today time.Time) (int, error) {
	dob, err := time.Parse(calendar.DateFormat, birthdate)
	if err != nil {
		return 0, ErrInvalidBirthdate
	}
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years, nil
}
