package browser_test

import (
	"strings"
	"testing"
)

// TestSimuladosAddAndDelete adds a practice exam attempt, checks the
// stats line updates, then deletes the attempt again.
func TestSimuladosAddAndDelete(t *testing.T) {
	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/simulados"); err != nil {
		t.Fatalf("failed to open simulados: %v", err)
	}

	if err := page.Locator(`input[name="sdate"]`).Fill("2026-02-14"); err != nil {
		t.Fatalf("failed to fill date: %v", err)
	}
	if err := page.Locator(`input[name="q"]`).Fill("80"); err != nil {
		t.Fatalf("failed to fill questions: %v", err)
	}
	if err := page.Locator(`input[name="a"]`).Fill("52"); err != nil {
		t.Fatalf("failed to fill correct: %v", err)
	}
	if err := page.Locator(`input[name="disc"]`).Fill("portugues"); err != nil {
		t.Fatalf("failed to fill discipline: %v", err)
	}
	if err := page.Locator(`form[action="/simulados"] button[type=submit]`).Click(); err != nil {
		t.Fatalf("failed to submit attempt: %v", err)
	}
	if err := page.WaitForURL("**/simulados"); err != nil {
		t.Fatalf("add did not redirect back: %v", err)
	}

	stats, err := page.Locator(".stats").TextContent()
	if err != nil {
		t.Fatalf("failed to read stats: %v", err)
	}
	if !strings.Contains(stats, "1 attempts") || !strings.Contains(stats, "65.0%") {
		t.Fatalf("expected 1 attempt at 65.0%%, got %q", stats)
	}

	row, err := page.Locator("table.log tr").Nth(1).TextContent()
	if err != nil {
		t.Fatalf("failed to read log row: %v", err)
	}
	if !strings.Contains(row, "portugues") {
		t.Fatalf("expected discipline in log row, got %q", row)
	}

	if err := page.Locator(`form[action^="/simulados/del/"] button`).Click(); err != nil {
		t.Fatalf("failed to delete attempt: %v", err)
	}
	if err := page.WaitForURL("**/simulados"); err != nil {
		t.Fatalf("delete did not redirect back: %v", err)
	}
	stats, err = page.Locator(".stats").TextContent()
	if err != nil {
		t.Fatalf("failed to read stats after delete: %v", err)
	}
	if !strings.Contains(stats, "0 attempts") {
		t.Fatalf("expected 0 attempts after delete, got %q", stats)
	}
}

// TestSimuladosRejectsBadScore submits more correct answers than questions
// and expects a validation flash instead of a new row.
func TestSimuladosRejectsBadScore(t *testing.T) {
	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/simulados"); err != nil {
		t.Fatalf("failed to open simulados: %v", err)
	}
	if err := page.Locator(`input[name="q"]`).Fill("10"); err != nil {
		t.Fatalf("failed to fill questions: %v", err)
	}
	if err := page.Locator(`input[name="a"]`).Fill("20"); err != nil {
		t.Fatalf("failed to fill correct: %v", err)
	}
	if err := page.Locator(`form[action="/simulados"] button[type=submit]`).Click(); err != nil {
		t.Fatalf("failed to submit attempt: %v", err)
	}
	if err := page.WaitForURL("**/simulados"); err != nil {
		t.Fatalf("submit did not redirect back: %v", err)
	}

	stats, err := page.Locator(".stats").TextContent()
	if err != nil {
		t.Fatalf("failed to read stats: %v", err)
	}
	if !strings.Contains(stats, "0 attempts") {
		t.Fatalf("invalid attempt should not be stored, got %q", stats)
	}
	flash, err := page.Locator(".flash").TextContent()
	if err != nil {
		t.Fatalf("expected a flash message: %v", err)
	}
	if flash == "" {
		t.Fatal("expected non-empty validation flash")
	}
}
