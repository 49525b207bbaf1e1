package orchestrators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/rhenandrew/Bombeiro-Militar/internal/adapters/email"
	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
)

// reportRenderer converts note markdown for the report body. Raw HTML in
// notes is escaped (WithUnsafe is NOT set), preventing injection into the
// mail body.
var reportRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// reportTemplate lays out the month summary mail.
var reportTemplate = template.Must(template.New("report").Parse(`
<h2>{{.MonthName}} {{.Year}}</h2>
<p>{{.Stats.OK}} days completed, {{.Stats.Miss}} missed, {{.Stats.Planned}} planned.</p>
{{if .Entries}}
<ul>
{{range .Entries}}
<li><strong>{{.Date}}</strong> [{{.Status}}] {{.NoteHTML}}</li>
{{end}}
</ul>
{{else}}
<p>No notes recorded this month.</p>
{{end}}
`))

type reportEntry struct {
	Date     string
	Status   string
	NoteHTML template.HTML
}

// SendMonthReportInput carries input for the month report orchestrator.
type SendMonthReportInput struct {
	Year  int
	Month int // 0-based
	To    string
}

// SendMonthReportDeps holds dependencies for SendMonthReport.
type SendMonthReportDeps struct {
	CalendarStore CalendarStoreForOrchestrator
	Sender        email.Sender
}

// ExecuteSendMonthReport mails a one-off summary of the month: the status
// counts plus every day that carries a note or an outcome, notes rendered
// from markdown. The send is synchronous; there is no outbox or retry.
// PRE: To is a configured recipient address
// POST: the mail was accepted by the sender, or an error is returned
func ExecuteSendMonthReport(ctx context.Context, input SendMonthReportInput, deps SendMonthReportDeps) error {
	if input.To == "" {
		return errors.New("report recipient is not configured")
	}

	grid, err := ExecuteViewMonth(ctx, ViewMonthInput{Year: input.Year, Month: input.Month},
		ViewMonthDeps{CalendarStore: deps.CalendarStore})
	if err != nil {
		return err
	}

	var entries []reportEntry
	for _, cell := range grid.Cells {
		if !cell.InMonth || (cell.Note == "" && cell.Status == calendar.StatusNone) {
			continue
		}
		var buf bytes.Buffer
		if err := reportRenderer.Convert([]byte(cell.Note), &buf); err != nil {
			buf.Reset()
			buf.WriteString(template.HTMLEscapeString(cell.Note))
		}
		entries = append(entries, reportEntry{
			Date:     cell.Date,
			Status:   cell.Status,
			NoteHTML: template.HTML(buf.String()),
		})
	}

	var body bytes.Buffer
	err = reportTemplate.Execute(&body, map[string]any{
		"MonthName": grid.MonthName,
		"Year":      grid.Year,
		"Stats":     grid.Stats,
		"Entries":   entries,
	})
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{input.To},
		Subject: fmt.Sprintf("Study report: %s %d", grid.MonthName, grid.Year),
		HTML:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("send month report: %w", err)
	}

	slog.Info("report_event", "event", "month_report_sent", "month", fmt.Sprintf("%04d-%02d", grid.Year, grid.Month+1), "entries", len(entries))
	return nil
}
