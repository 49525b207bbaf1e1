package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
)

// CalendarStoreForOrchestrator defines the store interface needed by calendar orchestrators.
type CalendarStoreForOrchestrator interface {
	ListRange(ctx context.Context, from, to string) ([]calendar.Day, error)
	SaveMonth(ctx context.Context, days []calendar.Day) error
	DeleteByDate(ctx context.Context, date string) error
}

// --- View Month ---

// ViewMonthInput carries input for the month view orchestrator.
// Month is zero-based (0 = January), matching the HTTP surface.
type ViewMonthInput struct {
	Year  int
	Month int
}

// ViewMonthDeps holds dependencies for ViewMonth.
type ViewMonthDeps struct {
	CalendarStore CalendarStoreForOrchestrator
}

// ExecuteViewMonth loads a month's recorded days and lays them out as a grid.
// PRE: 0 <= Month <= 11
// POST: grid cells cover the whole month, padded to whole weeks
func ExecuteViewMonth(ctx context.Context, input ViewMonthInput, deps ViewMonthDeps) (calendar.MonthGrid, error) {
	first, last := calendar.MonthBounds(input.Year, input.Month)
	recorded, err := deps.CalendarStore.ListRange(ctx, first, last)
	if err != nil {
		return calendar.MonthGrid{}, fmt.Errorf("load month %s: %w", first[:7], err)
	}

	byDate := make(map[string]calendar.Day, len(recorded))
	for _, d := range recorded {
		byDate[d.Date] = d
	}
	return calendar.BuildMonthGrid(input.Year, input.Month, byDate), nil
}

// --- Save Month ---

// SaveMonthInput carries the per-date form submissions for one month.
// A date absent from Statuses keeps its stored status; a date absent from
// Notes is treated as an empty note.
type SaveMonthInput struct {
	Year     int
	Month    int
	Notes    map[string]string // ISO date -> note
	Statuses map[string]string // ISO date -> status, only for submitted selects
}

// SaveMonthDeps holds dependencies for SaveMonth.
type SaveMonthDeps struct {
	CalendarStore CalendarStoreForOrchestrator
}

// ExecuteSaveMonth applies a month-wide form submission as one atomic unit.
// Per day: the note is trimmed; an omitted status preserves the stored one
// (none when no row). Days that end empty are not created as new rows, but
// an existing row is still updated in place, never implicitly deleted.
// PRE: 0 <= Month <= 11; every submitted status is a valid status value
// POST: all affected rows written in one transaction, or none on error
func ExecuteSaveMonth(ctx context.Context, input SaveMonthInput, deps SaveMonthDeps) error {
	for date, status := range input.Statuses {
		if !calendar.ValidStatus(status) {
			return fmt.Errorf("day %s: %w", date, calendar.ErrInvalidStatus)
		}
	}

	first, last := calendar.MonthBounds(input.Year, input.Month)
	recorded, err := deps.CalendarStore.ListRange(ctx, first, last)
	if err != nil {
		return fmt.Errorf("load month %s: %w", first[:7], err)
	}
	existing := make(map[string]calendar.Day, len(recorded))
	for _, d := range recorded {
		existing[d.Date] = d
	}

	var toWrite []calendar.Day
	for dayNum := 1; dayNum <= calendar.DaysIn(input.Year, input.Month); dayNum++ {
		date := calendar.DateOf(input.Year, input.Month, dayNum)
		stored, hasRow := existing[date]

		day := calendar.Day{Date: date, Note: strings.TrimSpace(input.Notes[date])}
		if status, ok := input.Statuses[date]; ok {
			day.Status = status
		} else if hasRow {
			day.Status = stored.Status
		} else {
			day.Status = calendar.StatusNone
		}

		if hasRow || !day.IsEmpty() {
			toWrite = append(toWrite, day)
		}
	}

	if err := deps.CalendarStore.SaveMonth(ctx, toWrite); err != nil {
		return fmt.Errorf("save month %s: %w", first[:7], err)
	}

	slog.Info("calendar_event", "event", "month_saved", "month", first[:7], "days_written", len(toWrite))
	return nil
}

// --- Clear Day ---

// ClearDayInput carries input for the day-clear orchestrator.
type ClearDayInput struct {
	Date string
}

// ClearDayDeps holds dependencies for ClearDay.
type ClearDayDeps struct {
	CalendarStore CalendarStoreForOrchestrator
}

// ExecuteClearDay deletes the calendar row for one date. Clearing a date
// with no row is a harmless no-op.
// PRE: Date parses strictly as YYYY-MM-DD, checked before any store access
// POST: no calendar row exists for Date
func ExecuteClearDay(ctx context.Context, input ClearDayInput, deps ClearDayDeps) error {
	if !calendar.ValidDate(input.Date) {
		return calendar.ErrInvalidDate
	}
	if err := deps.CalendarStore.DeleteByDate(ctx, input.Date); err != nil {
		return fmt.Errorf("clear day %s: %w", input.Date, err)
	}
	slog.Info("calendar_event", "event", "day_cleared", "date", input.Date)
	return nil
}
