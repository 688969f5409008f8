// Package boltstore implements the bbolt BlobStore backend. All
// database aggregates live in one bucket of a single bolt file.
package boltstore

import (
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// databasesBucket holds one key per database ID.
var databasesBucket = []byte("databases")

// dbFileName is the bolt file created under the data directory.
const dbFileName = "gridstore.bolt"

// Store is a BlobStore backed by a bbolt file.
type Store struct {
	db *bolt.DB
}

// Open creates the data directory if needed, opens (or creates) the
// bolt file inside it, and ensures the databases bucket exists.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dataDir, dbFileName), 0o644, bolt.DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("opening bolt: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(databasesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Put stores or replaces the blob for the given database ID.
func (s *Store) Put(id string, blob []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(databasesBucket).Put([]byte(id), blob)
	})
}

// Get retrieves the blob for the given database ID.
func (s *Store) Get(id string) ([]byte, error) {
	var body []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(databasesBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: database %s", types.ErrNotFound, id)
		}
		body = make([]byte, len(v))
		copy(body, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Delete removes the blob for the given database ID.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(databasesBucket)
		if b.Get([]byte(id)) == nil {
			return fmt.Errorf("%w: database %s", types.ErrNotFound, id)
		}
		return b.Delete([]byte(id))
	})
}

// List returns the IDs of all stored databases in key order.
func (s *Store) List() ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(databasesBucket).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Close releases the bolt file. Idempotent: bolt tolerates a second
// close on an already-closed handle.
func (s *Store) Close() error {
	return s.db.Close()
}
