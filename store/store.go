// Package store keeps named durations in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/nmeilick/durflex/duration"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an alias does not exist
var ErrNotFound = errors.New("alias not found")

var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

const schema = `
	CREATE TABLE IF NOT EXISTS aliases (
		name TEXT PRIMARY KEY,
		duration TEXT NOT NULL,
		created TIMESTAMP NOT NULL,
		updated TIMESTAMP NOT NULL
	)
`

// Alias is a stored, named duration
type Alias struct {
	Name     string
	Duration duration.Duration
	Created  time.Time
	Updated  time.Time
}

// Store is a SQLite-backed alias store
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// Option is a function that configures a Store
type Option func(*Store) error

// WithClock sets the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		s.now = now
		return nil
	}
}

// Open opens or creates the store at path
func Open(path string, options ...Option) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store database: %w", err)
	}

	s := &Store{
		db:   db,
		path: path,
		now:  func() time.Time { return time.Now().UTC() },
	}

	for _, option := range options {
		if err := option(s); err != nil {
			db.Close()
			return nil, err
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	os.Chmod(path, 0600)

	return s, nil
}

// Close closes the store database
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file
func (s *Store) Path() string {
	return s.path
}

// ValidName reports whether name can be used as an alias
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// Set stores d under name, replacing an existing alias
func (s *Store) Set(ctx context.Context, name string, d duration.Duration) error {
	if !ValidName(name) {
		return fmt.Errorf("invalid alias name: %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO aliases (name, duration, created, updated) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET duration = excluded.duration, updated = excluded.updated
	`, name, d, now, now)
	if err != nil {
		return fmt.Errorf("failed to store alias %s: %w", name, err)
	}
	return nil
}

// Get returns the alias called name
func (s *Store) Get(ctx context.Context, name string) (Alias, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Alias{Name: name}
	err := s.db.QueryRowContext(ctx,
		"SELECT duration, created, updated FROM aliases WHERE name = ?", name,
	).Scan(&a.Duration, &a.Created, &a.Updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Alias{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	} else if err != nil {
		return Alias{}, err
	}
	return a, nil
}

// List returns all aliases sorted by name
func (s *Store) List(ctx context.Context) ([]Alias, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, "SELECT name, duration, created, updated FROM aliases ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Alias
	for rows.Next() {
		var a Alias
		if err := rows.Scan(&a.Name, &a.Duration, &a.Created, &a.Updated); err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	return result, rows.Err()
}

// Delete removes the alias called name
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM aliases WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
