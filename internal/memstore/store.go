// Package memstore implements an in-memory BlobStore, used by tests
// and for ephemeral sessions.
package memstore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Store holds database blobs in a map. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

// Put stores or replaces the blob for the given database ID.
func (s *Store) Put(id string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blobs[id] = cp
	return nil
}

// Get retrieves the blob for the given database ID.
func (s *Store) Get(id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: database %s", types.ErrNotFound, id)
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, nil
}

// Delete removes the blob for the given database ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[id]; !ok {
		return fmt.Errorf("%w: database %s", types.ErrNotFound, id)
	}
	delete(s.blobs, id)
	return nil
}

// List returns the IDs of all stored databases, sorted.
func (s *Store) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.blobs))
	for id := range s.blobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
