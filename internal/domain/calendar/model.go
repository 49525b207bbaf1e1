package calendar

import (
	"errors"
	"strings"
	"time"
)

// Status values for a calendar day.
const (
	StatusNone = "none" // nothing recorded
	StatusOK   = "ok"   // study day completed
	StatusMiss = "miss" // study day missed
)

// Domain errors
var (
	ErrInvalidStatus = errors.New("status must be 'none', 'ok' or 'miss'")
	ErrInvalidDate   = errors.New("date must be a valid YYYY-MM-DD date")
)

// DateFormat is the ISO date layout used for all calendar keys.
const DateFormat = "2006-01-02"

// Day is one calendar day's study note and status, keyed by ISO date.
// An absent row is equivalent to Day{Date: d, Note: "", Status: StatusNone}.
type Day struct {
	Date   string // YYYY-MM-DD, primary key
	Note   string
	Status string
}

// ValidStatus reports whether s is one of the three allowed status values.
func ValidStatus(s string) bool {
	return s == StatusNone || s == StatusOK || s == StatusMiss
}

// ValidDate reports whether s parses strictly as a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// Validate checks the Day's invariants.
// PRE: Day struct is populated
// POST: returns nil if valid, error describing the first violation otherwise
func (d *Day) Validate() error {
	if !ValidDate(d.Date) {
		return ErrInvalidDate
	}
	if !ValidStatus(d.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsEmpty reports whether the day carries no information. Empty days are not
// persisted as new rows; an existing row may still be updated to empty.
func (d *Day) IsEmpty() bool {
	return strings.TrimSpace(d.Note) == "" && d.Status == StatusNone
}

// IsPlanned reports whether the day has a note but no outcome yet.
func (d *Day) IsPlanned() bool {
	return strings.TrimSpace(d.Note) != "" && d.Status == StatusNone
}
