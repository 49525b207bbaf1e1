package simulado

import (
	"context"

	"github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage"
	domain "github.com/rhenandrew/Bombeiro-Militar/internal/domain/simulado"
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

// Insert records a new exam attempt and returns its assigned id.
// PRE: a is a valid Attempt (Validate() returns nil)
// POST: attempt persisted; returned id is the autoincrement key
func (s *SQLiteStore) Insert(ctx context.Context, a domain.Attempt) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO simulados (sdate, q, a, disc) VALUES (?, ?, ?, ?)`,
		a.Date, a.Questions, a.Correct, a.Discipline,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAll returns every attempt, most recent first.
// POST: sorted by sdate descending, then id descending
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sdate, q, a, COALESCE(disc, '')
		 FROM simulados
		 ORDER BY sdate DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []domain.Attempt
	for rows.Next() {
		var a domain.Attempt
		if err := rows.Scan(&a.ID, &a.Date, &a.Questions, &a.Correct, &a.Discipline); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// DeleteByID removes one attempt. Unknown ids are a no-op.
// POST: no attempt with the given id exists
func (s *SQLiteStore) DeleteByID(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM simulados WHERE id = ?`, id)
	return err
}

// DeleteByDate removes every attempt recorded on the given date.
// PRE: date is a valid YYYY-MM-DD string
// POST: no attempt with sdate = date exists
func (s *SQLiteStore) DeleteByDate(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM simulados WHERE sdate = ?`, date)
	return err
}
