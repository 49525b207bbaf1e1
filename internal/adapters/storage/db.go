package storage

import (
	"database/sql"
	"fmt"
)

// Open opens the SQLite database at path with the pragmas the tracker
// relies on: WAL journaling for crash tolerance, a busy timeout so
// overlapping requests queue instead of failing, and NORMAL synchronous
// which is safe under WAL.
// PRE: path is a writable file path (created if missing)
// POST: returns an open, pinged connection with pool limits set
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return db, nil
}

// InitDB initializes the database schema.
// Table and column names are kept from earlier versions of the tracker so
// an existing planner.db opens cleanly; columns added since then are
// provisioned by the additive migration below.
// PRE: db is a valid database connection
// POST: all four tables exist with the current column set; calling again
// is a cheap no-op
func InitDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS calendar (
		cdate TEXT PRIMARY KEY,
		note TEXT,
		status TEXT CHECK(status IN ('none','ok','miss')) DEFAULT 'none'
	);

	CREATE TABLE IF NOT EXISTS simulados (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sdate TEXT NOT NULL,
		q INTEGER NOT NULL,
		a INTEGER NOT NULL,
		disc TEXT
	);

	CREATE TABLE IF NOT EXISTS taf_summary (
		adate TEXT PRIMARY KEY,
		running_km REAL,
		running_minutes INTEGER,
		pushups INTEGER,
		situps INTEGER,
		pullups INTEGER,
		weight REAL,
		bmi REAL
	);

	CREATE TABLE IF NOT EXISTS user_profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		height_m REAL,
		birthdate TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Additive migration: databases written before these columns existed
	// gain them here. Never destructive.
	migrations := []struct {
		table, column, ddl string
	}{
		{"taf_summary", "bmi", "ALTER TABLE taf_summary ADD COLUMN bmi REAL"},
		{"user_profile", "height_m", "ALTER TABLE user_profile ADD COLUMN height_m REAL"},
		{"user_profile", "birthdate", "ALTER TABLE user_profile ADD COLUMN birthdate TEXT"},
	}
	for _, m := range migrations {
		ok, err := hasColumn(db, m.table, m.column)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", m.table, err)
		}
		if !ok {
			if _, err := db.Exec(m.ddl); err != nil {
				return fmt.Errorf("failed to add %s.%s: %w", m.table, m.column, err)
			}
		}
	}

	return nil
}

// hasColumn reports whether the table already carries the named column.
func hasColumn(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
