package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rhenandrew/Bombeiro-Militar/internal/application/orchestrators"
	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/simulado"
)

func handleSimuladosList(w http.ResponseWriter, r *http.Request) {
	log, err := orchestrators.ExecuteListSimulados(r.Context(),
		orchestrators.ListSimuladosDeps{SimuladoStore: stores.SimuladoStore})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "simulados.html", map[string]any{
		"Attempts": log.Attempts,
		"Stats":    log.Stats,
	})
}

func handleSimuladoAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	q, errQ := strconv.Atoi(r.PostFormValue("q"))
	a, errA := strconv.Atoi(r.PostFormValue("a"))
	if errQ != nil || errA != nil {
		setFlash(w, "Question and correct counts must be numbers.")
		http.Redirect(w, r, "/simulados", http.StatusSeeOther)
		return
	}

	_, err := orchestrators.ExecuteAddSimulado(r.Context(), orchestrators.AddSimuladoInput{
		Date:       r.PostFormValue("sdate"),
		Questions:  q,
		Correct:    a,
		Discipline: r.PostFormValue("disc"),
	}, orchestrators.AddSimuladoDeps{SimuladoStore: stores.SimuladoStore, Now: timeNow})
	switch {
	case errors.Is(err, simulado.ErrInvalidDate),
		errors.Is(err, simulado.ErrInvalidQuestions),
		errors.Is(err, simulado.ErrInvalidCorrect):
		setFlash(w, "Not recorded: "+err.Error())
	case err != nil:
		internalError(w, err)
		return
	default:
		setFlash(w, "Simulado recorded.")
	}
	http.Redirect(w, r, "/simulados", http.StatusSeeOther)
}

func handleSimuladoDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := orchestrators.ExecuteDeleteSimulado(r.Context(), id,
		orchestrators.DeleteSimuladoDeps{SimuladoStore: stores.SimuladoStore}); err != nil {
		internalError(w, err)
		return
	}
	setFlash(w, "Simulado deleted.")
	http.Redirect(w, r, "/simulados", http.StatusSeeOther)
}

func handleSimuladoDeleteByDate(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteSimuladosByDate(r.Context(), r.PathValue("sdate"),
		orchestrators.DeleteSimuladoDeps{SimuladoStore: stores.SimuladoStore})
	if errors.Is(err, simulado.ErrInvalidDate) {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	setFlash(w, "Simulados deleted.")
	http.Redirect(w, r, "/simulados", http.StatusSeeOther)
}
