// Package service orchestrates the record store: identity generation,
// aggregate persistence through a BlobStore, the view read path, AI
// field generation, and the import/export adapters.
package service

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/gridstore/pkg/template"
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Service wraps a BlobStore with database-level operations. Each call
// loads the aggregate, applies the mutation in memory, and persists the
// whole aggregate back as one blob: last write wins, no write-ahead
// log. The in-memory copy is updated before the persistence write is
// confirmed.
type Service struct {
	store  types.BlobStore
	ai     types.AIGenerator
	logger *zap.SugaredLogger
}

// New creates a Service over the given store. The generator may be nil
// when AI fields are not used; a nil logger falls back to a nop logger.
func New(store types.BlobStore, ai types.AIGenerator, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{store: store, ai: ai, logger: logger}
}

// DatabaseSummary is a listing row for one stored database.
type DatabaseSummary struct {
	DatabaseID  string `json:"database_id"`
	Name        string `json:"name"`
	FieldCount  int    `json:"field_count"`
	ViewCount   int    `json:"view_count"`
	RecordCount int    `json:"record_count"`
}

// CreateDatabase creates and persists a new database. With a template
// ID, the template's fields, views, and sample records are cloned with
// fresh identifiers; otherwise a minimal database with one primary text
// field and one default grid view is produced.
func (s *Service) CreateDatabase(name, templateID string) (*types.Database, error) {
	var db *types.Database
	if templateID != "" {
		tmpl, err := template.Get(templateID)
		if err != nil {
			return nil, err
		}
		db, err = tmpl.Instantiate(name)
		if err != nil {
			return nil, err
		}
	} else {
		db = types.NewDatabase(name)
	}
	if err := s.SaveDatabase(db); err != nil {
		return nil, err
	}
	s.logger.Infow("database created",
		"database_id", db.DatabaseID, "name", db.Name, "template", templateID)
	return db, nil
}

// GetDatabase loads the aggregate for the given ID.
// Returns ErrNotFound if no blob exists for the ID.
func (s *Service) GetDatabase(id string) (*types.Database, error) {
	blob, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	var db types.Database
	if err := json.Unmarshal(blob, &db); err != nil {
		return nil, fmt.Errorf("decoding database %s: %w", id, err)
	}
	return &db, nil
}

// SaveDatabase serializes the aggregate and persists it as one blob.
// This is the explicit flush boundary: callers holding an aggregate
// across several mutations persist once, here.
func (s *Service) SaveDatabase(db *types.Database) error {
	blob, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("encoding database %s: %w", db.DatabaseID, err)
	}
	return s.store.Put(db.DatabaseID, blob)
}

// DeleteDatabase removes the stored blob. No external references
// survive: fields, views, and records live only inside the blob.
func (s *Service) DeleteDatabase(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.Infow("database deleted", "database_id", id)
	return nil
}

// ListDatabases returns a summary row per stored database.
func (s *Service) ListDatabases() ([]DatabaseSummary, error) {
	ids, err := s.store.List()
	if err != nil {
		return nil, err
	}
	out := make([]DatabaseSummary, 0, len(ids))
	for _, id := range ids {
		db, err := s.GetDatabase(id)
		if err != nil {
			return nil, err
		}
		out = append(out, DatabaseSummary{
			DatabaseID:  db.DatabaseID,
			Name:        db.Name,
			FieldCount:  len(db.Fields),
			ViewCount:   len(db.Views),
			RecordCount: len(db.Records),
		})
	}
	return out, nil
}

// mutate loads the aggregate, applies fn, and persists on success.
// A failed mutation leaves the stored blob untouched.
func (s *Service) mutate(id string, fn func(db *types.Database) error) (*types.Database, error) {
	db, err := s.GetDatabase(id)
	if err != nil {
		return nil, err
	}
	if err := fn(db); err != nil {
		return nil, err
	}
	if err := s.SaveDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}
