package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rhenandrew/Bombeiro-Militar/internal/application/orchestrators"
	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
)

// parseMonthYear reads the zero-based month and year query parameters,
// defaulting to the current month.
func parseMonthYear(r *http.Request) (year, month int, err error) {
	now := timeNow()
	year, month = now.Year(), int(now.Month())-1

	if v := r.URL.Query().Get("year"); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year %q", v)
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		month, err = strconv.Atoi(v)
		if err != nil || month < 0 || month > 11 {
			return 0, 0, fmt.Errorf("invalid month %q", v)
		}
	}
	return year, month, nil
}

// monthURL builds the calendar URL for a zero-based month.
func monthURL(year, month int) string {
	return fmt.Sprintf("/calendar?month=%d&year=%d", month, year)
}

func handleCalendarView(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseMonthYear(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	grid, err := orchestrators.ExecuteViewMonth(r.Context(),
		orchestrators.ViewMonthInput{Year: year, Month: month},
		orchestrators.ViewMonthDeps{CalendarStore: stores.CalendarStore})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "calendar.html", map[string]any{
		"Grid":     grid,
		"Weekdays": []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		"MonthNames": []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	})
}

func handleCalendarSave(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseMonthYear(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	notes := make(map[string]string)
	statuses := make(map[string]string)
	for field, values := range r.PostForm {
		if len(values) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(field, "note_"):
			notes[strings.TrimPrefix(field, "note_")] = values[0]
		case strings.HasPrefix(field, "status_"):
			statuses[strings.TrimPrefix(field, "status_")] = values[0]
		}
	}

	err = orchestrators.ExecuteSaveMonth(r.Context(), orchestrators.SaveMonthInput{
		Year:     year,
		Month:    month,
		Notes:    notes,
		Statuses: statuses,
	}, orchestrators.SaveMonthDeps{CalendarStore: stores.CalendarStore})
	if errors.Is(err, calendar.ErrInvalidStatus) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	setFlash(w, "Month saved.")
	http.Redirect(w, r, monthURL(year, month), http.StatusSeeOther)
}

func handleCalendarClear(w http.ResponseWriter, r *http.Request) {
	cdate := r.PathValue("cdate")

	err := orchestrators.ExecuteClearDay(r.Context(),
		orchestrators.ClearDayInput{Date: cdate},
		orchestrators.ClearDayDeps{CalendarStore: stores.CalendarStore})
	if errors.Is(err, calendar.ErrInvalidDate) {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	// Redirect back to the cleared day's month.
	d, _ := time.Parse(calendar.DateFormat, cdate)
	setFlash(w, "Day cleared.")
	http.Redirect(w, r, monthURL(d.Year(), int(d.Month())-1), http.StatusSeeOther)
}

func handleCalendarEmail(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseMonthYear(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = orchestrators.ExecuteSendMonthReport(r.Context(), orchestrators.SendMonthReportInput{
		Year:  year,
		Month: month,
		To:    reportTo,
	}, orchestrators.SendMonthReportDeps{
		CalendarStore: stores.CalendarStore,
		Sender:        emailSender,
	})
	if err != nil {
		setFlash(w, "Report not sent: "+err.Error())
	} else {
		setFlash(w, "Report sent.")
	}
	http.Redirect(w, r, monthURL(year, month), http.StatusSeeOther)
}
