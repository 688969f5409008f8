// Package sqlitestore implements the SQLite BlobStore backend. Each
// database aggregate is one row in the databases table, keyed by ID.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite file created under the data directory.
const dbFileName = "gridstore.db"

// Store is a BlobStore backed by a single SQLite file.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the
// SQLite file inside it, and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Put stores or replaces the blob for the given database ID.
func (s *Store) Put(id string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errors.New("store is closed")
	}
	_, err := s.db.Exec(
		`INSERT INTO databases (id, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		id, blob, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing database %s: %w", id, err)
	}
	return nil
}

// Get retrieves the blob for the given database ID.
func (s *Store) Get(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, errors.New("store is closed")
	}
	var body []byte
	err := s.db.QueryRow(`SELECT body FROM databases WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: database %s", types.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading database %s: %w", id, err)
	}
	return body, nil
}

// Delete removes the blob for the given database ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errors.New("store is closed")
	}
	res, err := s.db.Exec(`DELETE FROM databases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting database %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: database %s", types.ErrNotFound, id)
	}
	return nil
}

// List returns the IDs of all stored databases, sorted by ID.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, errors.New("store is closed")
	}
	rows, err := s.db.Query(`SELECT id FROM databases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close releases the SQLite connection. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
