package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage"
	domain "github.com/rhenandrew/Bombeiro-Militar/internal/domain/calendar"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
// PRE: db is a valid, open database connection with the schema provisioned
// POST: store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByDate retrieves the calendar day for an ISO date.
// PRE: date is a valid YYYY-MM-DD string
// POST: found is false when no row exists; absence is not an error
func (s *SQLiteStore) GetByDate(ctx context.Context, date string) (domain.Day, bool, error) {
	var d domain.Day
	err := s.db.QueryRowContext(ctx,
		`SELECT cdate, COALESCE(note, ''), COALESCE(status, 'none') FROM calendar WHERE cdate = ?`, date,
	).Scan(&d.Date, &d.Note, &d.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Day{}, false, nil
	}
	if err != nil {
		return domain.Day{}, false, err
	}
	return d, true, nil
}

// ListRange returns the recorded days with cdate in [from, to] inclusive.
// PRE: from and to are valid YYYY-MM-DD strings
// POST: returns days sorted by cdate ascending; empty slice when none
func (s *SQLiteStore) ListRange(ctx context.Context, from, to string) ([]domain.Day, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT cdate, COALESCE(note, ''), COALESCE(status, 'none')
		 FROM calendar
		 WHERE cdate >= ? AND cdate <= ?
		 ORDER BY cdate ASC`, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.Note, &d.Status); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// SaveMonth upserts every given day in a single transaction, so a failure
// partway through a month-wide save leaves the month untouched.
// PRE: every day is valid (Validate() returns nil)
// POST: all rows persisted, or none on error
func (s *SQLiteStore) SaveMonth(ctx context.Context, days []domain.Day) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin month save: %w", err)
	}
	defer tx.Rollback()

	for _, d := range days {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO calendar (cdate, note, status) VALUES (?, ?, ?)
			 ON CONFLICT(cdate) DO UPDATE SET note=excluded.note, status=excluded.status`,
			d.Date, d.Note, d.Status,
		); err != nil {
			return fmt.Errorf("save day %s: %w", d.Date, err)
		}
	}
	return tx.Commit()
}

// DeleteByDate removes the calendar day for an ISO date.
// Deleting a date with no row is a no-op.
// PRE: date is a valid YYYY-MM-DD string
// POST: no row exists for date
func (s *SQLiteStore) DeleteByDate(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM calendar WHERE cdate = ?`, date)
	return err
}
