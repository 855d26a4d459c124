package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps a jar's cookie line in an embedded SQLite database,
// one row per jar.
type SQLiteStore struct {
	mu     sync.Mutex
	db     *sql.DB
	jarID  string
	closed bool
}

// NewSQLiteStore opens (or creates) a SQLite-backed jar at dbPath. An
// empty jarID starts a fresh jar under a generated ID.
func NewSQLiteStore(dbPath, jarID string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cookie database: %w", err)
	}
	return newSQLiteStore(db, jarID)
}

// NewSQLiteStoreInMemory creates an in-memory SQLite jar (useful for
// testing).
func NewSQLiteStoreInMemory(jarID string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	// A pooled second connection would see its own empty memory database.
	db.SetMaxOpenConns(1)
	return newSQLiteStore(db, jarID)
}

func newSQLiteStore(db *sql.DB, jarID string) (*SQLiteStore, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS cookie_jars (
			jar_id TEXT PRIMARY KEY,
			line TEXT NOT NULL DEFAULT '',
			updated_at DATETIME NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cookie database: %w", err)
	}

	if jarID == "" {
		jarID = uuid.NewString()
	}
	return &SQLiteStore{db: db, jarID: jarID}, nil
}

func (s *SQLiteStore) line() (string, error) {
	var line string
	err := s.db.QueryRow(
		"SELECT line FROM cookie_jars WHERE jar_id = ?", s.jarID,
	).Scan(&line)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// Read fetches the jar's cookie line and splits it into entries.
func (s *SQLiteStore) Read() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	line, err := s.line()
	if err != nil {
		return nil, err
	}
	return splitLine(line), nil
}

// Write merges the entry into the jar's cookie line and upserts the row.
func (s *SQLiteStore) Write(entry string, meta Metadata) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrStoreClosed
	}

	line, err := s.line()
	if err != nil {
		return "", err
	}

	_, err = s.db.Exec(`
		INSERT INTO cookie_jars (jar_id, line, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(jar_id) DO UPDATE SET
			line = excluded.line,
			updated_at = excluded.updated_at
	`, s.jarID, applyEntry(line, entry, meta), time.Now())
	if err != nil {
		return "", err
	}
	return entry, nil
}

// JarID returns the jar identifier this store is bound to.
func (s *SQLiteStore) JarID() string {
	return s.jarID
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
