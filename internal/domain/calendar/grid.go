package calendar

import "time"

// Cell is one slot of the month grid. Leading and trailing slots that pad the
// grid to whole weeks have InMonth=false and carry no date.
type Cell struct {
	InMonth bool
	Day     int    // day of month, 1-based (0 for padding)
	Date    string // YYYY-MM-DD ("" for padding)
	Note    string
	Status  string
}

// Stats summarises a month's recorded days.
type Stats struct {
	OK      int // days marked ok
	Miss    int // days marked miss
	Planned int // days with a note but status none
}

// MonthGrid is the fully laid out month: Sunday-first cells padded to whole
// weeks, plus summary stats and neighbouring months for navigation.
// Months are zero-based (0 = January) throughout.
type MonthGrid struct {
	Year      int
	Month     int // 0-based
	MonthName string
	Cells     []Cell
	Stats     Stats
	PrevMonth int
	PrevYear  int
	NextMonth int
	NextYear  int
}

// DaysIn returns the number of days in the given zero-based month.
func DaysIn(year, month int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the given zero-based
// month. time.Weekday is Sunday-first, which matches the grid convention.
func FirstWeekday(year, month int) time.Weekday {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// DateOf returns the ISO date of a day within the given zero-based month.
func DateOf(year, month, day int) string {
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).Format(DateFormat)
}

// MonthBounds returns the first and last ISO dates of the given zero-based
// month, suitable for an inclusive range query.
func MonthBounds(year, month int) (first, last string) {
	return DateOf(year, month, 1), DateOf(year, month, DaysIn(year, month))
}

// BuildMonthGrid lays out the given zero-based month as a Sunday-first grid.
// days maps ISO date to the recorded Day for that date; dates without an entry
// default to an empty note and status none. The result length is always a
// multiple of 7 and the number of InMonth cells equals the month's day count.
// PRE: 0 <= month <= 11
// POST: grid is fully populated; the input map is not mutated
func BuildMonthGrid(year, month int, days map[string]Day) MonthGrid {
	g := MonthGrid{
		Year:      year,
		Month:     month,
		MonthName: time.Month(month + 1).String(),
	}

	for pad := int(FirstWeekday(year, month)); pad > 0; pad-- {
		g.Cells = append(g.Cells, Cell{})
	}

	for d := 1; d <= DaysIn(year, month); d++ {
		date := DateOf(year, month, d)
		cell := Cell{InMonth: true, Day: d, Date: date, Status: StatusNone}
		if rec, ok := days[date]; ok {
			cell.Note = rec.Note
			cell.Status = rec.Status
		}
		g.Cells = append(g.Cells, cell)

		day := Day{Date: date, Note: cell.Note, Status: cell.Status}
		switch {
		case cell.Status == StatusOK:
			g.Stats.OK++
		case cell.Status == StatusMiss:
			g.Stats.Miss++
		case day.IsPlanned():
			g.Stats.Planned++
		}
	}

	for len(g.Cells)%7 != 0 {
		g.Cells = append(g.Cells, Cell{})
	}

	g.PrevMonth, g.PrevYear = (month+11)%12, year
	if month == 0 {
		g.PrevYear = year - 1
	}
	g.NextMonth, g.NextYear = (month+1)%12, year
	if month == 11 {
		g.NextYear = year + 1
	}

	return g
}
