package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements IntroStore on SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite state store instance.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// NewSQLiteStoreWithDB wraps an already opened database. The schema is not
// migrated.
func NewSQLiteStoreWithDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens a connection to the SQLite database, creating its directory.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	dsn := ":memory:"
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create state directory: %w", err)
			}
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// Every connection to :memory: is its own database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// OpenSQLite opens and migrates a store in one step.
func OpenSQLite(path string) (*SQLiteStore, error) {
	s := NewSQLiteStore()
	if err := s.Open(path); err != nil {
		return nil, err
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database path the store was opened with.
func (s *SQLiteStore) Path() string {
	return s.path
}

// IntroDismissed implements IntroStore.
func (s *SQLiteStore) IntroDismissed(ctx context.Context, visitorID string) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("database not opened")
	}

	var dismissedAt sql.NullTime
	err := s.db.QueryRowContext(ctx,
		`SELECT intro_dismissed_at FROM visitors WHERE id = ?`,
		visitorID,
	).Scan(&dismissedAt)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read intro flag: %w", err)
	}
	return dismissedAt.Valid, nil
}

// DismissIntro implements IntroStore. The first dismissal time is kept.
func (s *SQLiteStore) DismissIntro(ctx context.Context, visitorID string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (id, created_at, intro_dismissed_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET intro_dismissed_at = COALESCE(visitors.intro_dismissed_at, excluded.intro_dismissed_at)`,
		visitorID, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to dismiss intro: %w", err)
	}
	return nil
}

// CountDismissed returns how many visitors dismissed the intro.
func (s *SQLiteStore) CountDismissed(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database not opened")
	}

	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visitors WHERE intro_dismissed_at IS NOT NULL`,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count visitors: %w", err)
	}
	return n, nil
}
