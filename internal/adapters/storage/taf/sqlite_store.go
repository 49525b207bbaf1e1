package taf

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage"
	domain "github.com/rhenandrew/Bombeiro-Militar/internal/domain/taf"
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

const dayColumns = `adate, running_km, running_minutes, pushups, situps, pullups, weight, bmi`

// GetByDate retrieves the fitness day for an ISO date.
// PRE: date is a valid YYYY-MM-DD string
// POST: found is false when no row exists; absence is not an error
func (s *SQLiteStore) GetByDate(ctx context.Context, date string) (domain.Day, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+dayColumns+` FROM taf_summary WHERE adate = ?`, date)
	d, err := scanDay(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Day{}, false, nil
	}
	if err != nil {
		return domain.Day{}, false, err
	}
	return d, true, nil
}

// ListAll returns every fitness day, most recent first.
// POST: sorted by adate descending
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Day, error) {
	return s.list(ctx, `SELECT `+dayColumns+` FROM taf_summary ORDER BY adate DESC`)
}

// ListAsc returns every fitness day in chronological order, the shape the
// chart endpoint needs.
// POST: sorted by adate ascending
func (s *SQLiteStore) ListAsc(ctx context.Context) ([]domain.Day, error) {
	return s.list(ctx, `SELECT `+dayColumns+` FROM taf_summary ORDER BY adate ASC`)
}

func (s *SQLiteStore) list(ctx context.Context, query string) ([]domain.Day, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		d, err := scanDay(rows.Scan)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// Save writes the full row for a fitness day, replacing any existing row.
// Field-level merge semantics live in the domain (Day.Merge); callers
// load-merge-save rather than relying on a database construct.
// PRE: d is a valid Day (Validate() returns nil)
// POST: the row for d.Date matches d exactly
func (s *SQLiteStore) Save(ctx context.Context, d domain.Day) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO taf_summary (`+dayColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(adate) DO UPDATE SET
		   running_km=excluded.running_km, running_minutes=excluded.running_minutes,
		   pushups=excluded.pushups, situps=excluded.situps, pullups=excluded.pullups,
		   weight=excluded.weight, bmi=excluded.bmi`,
		d.Date, d.RunningKM, d.RunningMinutes, d.Pushups, d.Situps, d.Pullups, d.Weight, d.BMI,
	)
	return err
}

// UpdateBMI persists a freshly derived body-mass index for a date.
// PRE: a row for date exists
// POST: bmi column updated, other columns untouched
func (s *SQLiteStore) UpdateBMI(ctx context.Context, date string, bmi float64) error {
	_, err := s.db.ExecContext(ctx, `UPDATE taf_summary SET bmi = ? WHERE adate = ?`, bmi, date)
	return err
}

// DeleteByDate removes the fitness day for an ISO date. No-op when absent.
// POST: no row exists for date
func (s *SQLiteStore) DeleteByDate(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM taf_summary WHERE adate = ?`, date)
	return err
}

// DeleteRange removes every fitness day with adate in [from, to] inclusive.
// PRE: from and to are valid YYYY-MM-DD strings
// POST: no row with from <= adate <= to remains; rows outside are untouched
func (s *SQLiteStore) DeleteRange(ctx context.Context, from, to string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM taf_summary WHERE adate >= ? AND adate <= ?`, from, to)
	return err
}

// scanDay maps one taf_summary row onto the domain type, NULL columns
// becoming nil pointers.
func scanDay(scan func(...any) error) (domain.Day, error) {
	var d domain.Day
	var (
		runningKM      sql.NullFloat64
		runningMinutes sql.NullInt64
		pushups        sql.NullInt64
		situps         sql.NullInt64
		pullups        sql.NullInt64
		weight         sql.NullFloat64
		bmi            sql.NullFloat64
	)
	if err := scan(&d.Date, &runningKM, &runningMinutes, &pushups, &situps, &pullups, &weight, &bmi); err != nil {
		return domain.Day{}, err
	}
	if runningKM.Valid {
		d.RunningKM = &runningKM.Float64
	}
	if runningMinutes.Valid {
		v := int(runningMinutes.Int64)
		d.RunningMinutes = &v
	}
	if pushups.Valid {
		v := int(pushups.Int64)
		d.Pushups = &v
	}
	if situps.Valid {
		v := int(situps.Int64)
		d.Situps = &v
	}
	if pullups.Valid {
		v := int(pullups.Int64)
		d.Pullups = &v
	}
	if weight.Valid {
		d.Weight = &weight.Float64
	}
	if bmi.Valid {
		d.BMI = &bmi.Float64
	}
	return d, nil
}
