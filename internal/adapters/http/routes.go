package web

import "net/http"

// registerRoutes wires every page and endpoint. Months are zero-based in
// query parameters; every mutation is a POST so the CSRF middleware
// covers it.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleIndex)

	mux.HandleFunc("GET /calendar", handleCalendarView)
	mux.HandleFunc("POST /calendar/save", handleCalendarSave)
	mux.HandleFunc("POST /calendar/clear/{cdate}", handleCalendarClear)
	mux.HandleFunc("POST /calendar/email", handleCalendarEmail)

	mux.HandleFunc("GET /simulados", handleSimuladosList)
	mux.HandleFunc("POST /simulados", handleSimuladoAdd)
	mux.HandleFunc("POST /simulados/del/{id}", handleSimuladoDelete)
	mux.HandleFunc("POST /simulados/del-date/{sdate}", handleSimuladoDeleteByDate)

	mux.HandleFunc("GET /taf", handleTAFView)
	mux.HandleFunc("POST /taf", handleTAFRecord)
	mux.HandleFunc("GET /taf/data", handleTAFChartData)
	mux.HandleFunc("POST /taf/del/{adate}", handleTAFDeleteDay)
	mux.HandleFunc("POST /taf/del-range", handleTAFDeleteRange)
}

// handleIndex redirects the root to the calendar.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/calendar", http.StatusSeeOther)
}
