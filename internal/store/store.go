package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS log_entries (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		amount      REAL NOT NULL,
		label       TEXT NOT NULL DEFAULT '',
		kind        TEXT NOT NULL DEFAULT 'salt',
		occurred_at TEXT NOT NULL,
		created_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);

	CREATE INDEX IF NOT EXISTS idx_entries_occurred ON log_entries(occurred_at);

	CREATE TABLE IF NOT EXISTS daily_state (
		day                TEXT PRIMARY KEY,
		purity             TEXT NOT NULL DEFAULT 'none',
		fasting_started_at TEXT,
		condition_score    INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS water_intake (
		day         TEXT PRIMARY KEY,
		milliliters INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS profile (
		id            INTEGER PRIMARY KEY CHECK (id = 1),
		display_name  TEXT NOT NULL DEFAULT 'Researcher',
		reward_points INTEGER NOT NULL DEFAULT 0,
		level         INTEGER NOT NULL DEFAULT 1,
		title         TEXT NOT NULL DEFAULT 'Assistant Researcher',
		goal_grams    REAL NOT NULL DEFAULT 0
	);

	INSERT OR IGNORE INTO profile (id) VALUES (1);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	INSERT OR IGNORE INTO settings (key, value) VALUES
		('theme',         'light'),
		('notifications', 'on');
	`
	_, err := s.db.Exec(ddl)
	return err
}

// Reset wipes all user data and re-seeds the defaults. Used by the
// "discard all research data" action in settings.
func (s *Store) Reset() error {
	stmts := []string{
		`DELETE FROM log_entries`,
		`DELETE FROM daily_state`,
		`DELETE FROM water_intake`,
		`DELETE FROM profile`,
		`DELETE FROM settings`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return s.migrateV1()
}

// DefaultDBPath returns ~/.config/saltlab/saltlab.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "saltlab", "saltlab.db"), nil
}
