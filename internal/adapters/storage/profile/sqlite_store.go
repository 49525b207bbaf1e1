package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage"
	domain "github.com/rhenandrew/Bombeiro-Militar/internal/domain/profile"
)

// profileID is the fixed key of the singleton row, enforced by a CHECK
// constraint in the schema.
const profileID = 1

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

// Get retrieves the singleton profile row.
// POST: found is false when the row has never been seeded
func (s *SQLiteStore) Get(ctx context.Context) (domain.Record, bool, error) {
	var (
		height    sql.NullFloat64
		birthdate sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT height_m, birthdate FROM user_profile WHERE id = ?`, profileID,
	).Scan(&height, &birthdate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, false, nil
	}
	if err != nil {
		return domain.Record{}, false, err
	}

	var rec domain.Record
	if height.Valid {
		rec.HeightM = &height.Float64
	}
	if birthdate.Valid {
		rec.Birthdate = &birthdate.String
	}
	return rec, true, nil
}

// Insert creates the singleton row. A second insert fails on the primary
// key, so callers check Get first.
// PRE: p is a valid Profile (Validate() returns nil); no row exists yet
// POST: the singleton row exists with p's values
func (s *SQLiteStore) Insert(ctx context.Context, p domain.Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_profile (id, height_m, birthdate) VALUES (?, ?, ?)`,
		profileID, p.HeightM, p.Birthdate,
	)
	return err
}

// SetHeight backfills the height column.
// PRE: heightM > 0; the singleton row exists
// POST: height_m updated, birthdate untouched
func (s *SQLiteStore) SetHeight(ctx context.Context, heightM float64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_profile SET height_m = ? WHERE id = ?`, heightM, profileID)
	return err
}

// SetBirthdate backfills the birthdate column.
// PRE: birthdate is a valid YYYY-MM-DD string; the singleton row exists
// POST: birthdate updated, height_m untouched
func (s *SQLiteStore) SetBirthdate(ctx context.Context, birthdate string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_profile SET birthdate = ? WHERE id = ?`, birthdate, profileID)
	return err
}
