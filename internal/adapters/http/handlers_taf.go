package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rhenandrew/Bombeiro-Militar/internal/application/orchestrators"
	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/taf"
)

func handleTAFView(w http.ResponseWriter, r *http.Request) {
	log, err := orchestrators.ExecuteViewTAFLog(r.Context(), orchestrators.ViewTAFLogDeps{
		TAFStore:     stores.TAFStore,
		ProfileStore: stores.ProfileStore,
		Now:          timeNow,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "taf.html", map[string]any{
		"Days":    log.Days,
		"Profile": log.Profile,
		"Age":     log.Age,
		"Metrics": taf.Metrics,
	})
}

// optionalFloat parses a form value into a nil-when-blank float pointer.
func optionalFloat(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", v)
	}
	return &f, nil
}

// optionalInt parses a form value into a nil-when-blank int pointer.
func optionalInt(v string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("not a whole number: %q", v)
	}
	return &n, nil
}

func handleTAFRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	input := orchestrators.RecordTAFDayInput{Date: r.PostFormValue("adate")}
	var parseErr error
	parse := func(err error) {
		if parseErr == nil {
			parseErr = err
		}
	}
	var err error
	input.RunningKM, err = optionalFloat(r.PostFormValue("running_km"))
	parse(err)
	input.Pushups, err = optionalInt(r.PostFormValue("pushups"))
	parse(err)
	input.Situps, err = optionalInt(r.PostFormValue("situps"))
	parse(err)
	input.Pullups, err = optionalInt(r.PostFormValue("pullups"))
	parse(err)
	input.Weight, err = optionalFloat(r.PostFormValue("weight"))
	parse(err)
	if parseErr != nil {
		setFlash(w, "Not recorded: "+parseErr.Error())
		http.Redirect(w, r, "/taf", http.StatusSeeOther)
		return
	}

	_, err = orchestrators.ExecuteRecordTAFDay(r.Context(), input, orchestrators.RecordTAFDayDeps{
		TAFStore:     stores.TAFStore,
		ProfileStore: stores.ProfileStore,
		Now:          timeNow,
	})
	if errors.Is(err, taf.ErrInvalidDate) {
		setFlash(w, "Not recorded: "+err.Error())
		http.Redirect(w, r, "/taf", http.StatusSeeOther)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	setFlash(w, "TAF day recorded.")
	http.Redirect(w, r, "/taf", http.StatusSeeOther)
}

func handleTAFChartData(w http.ResponseWriter, r *http.Request) {
	series, err := orchestrators.ExecuteTAFChartData(r.Context(), r.URL.Query().Get("metric"),
		orchestrators.TAFChartDeps{TAFStore: stores.TAFStore})
	if err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}

func handleTAFDeleteDay(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteTAFDay(r.Context(), r.PathValue("adate"),
		orchestrators.DeleteTAFDeps{TAFStore: stores.TAFStore})
	if errors.Is(err, taf.ErrInvalidDate) {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	setFlash(w, "TAF day deleted.")
	http.Redirect(w, r, "/taf", http.StatusSeeOther)
}

func handleTAFDeleteRange(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteDeleteTAFRange(r.Context(),
		r.PostFormValue("start"), r.PostFormValue("end"),
		orchestrators.DeleteTAFDeps{TAFStore: stores.TAFStore})
	if errors.Is(err, taf.ErrInvalidDate) {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	setFlash(w, "TAF range deleted.")
	http.Redirect(w, r, "/taf", http.StatusSeeOther)
}
