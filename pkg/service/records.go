package service

import (
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// AddRecord creates a record from raw data and persists the aggregate.
// Coercion, auto values, and required-field validation apply.
func (s *Service) AddRecord(dbID string, data map[string]any) (*types.Record, error) {
	var out *types.Record
	_, err := s.mutate(dbID, func(db *types.Database) error {
		rec, err := db.AddRecord(data)
		if err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("record added", "database_id", dbID, "record_id", out.RecordID)
	return out, nil
}

// UpdateRecord merges a coerced patch into a record and persists.
// Required-field validation is not run on update. A kanban
// drag-to-reassign is exactly this call writing the group field.
func (s *Service) UpdateRecord(dbID, recordID string, patch map[string]any) (*types.Record, error) {
	var out *types.Record
	_, err := s.mutate(dbID, func(db *types.Database) error {
		rec, err := db.UpdateRecord(recordID, patch)
		if err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteRecord removes a record and persists. Deleting an absent ID is
// ErrNotFound, not a no-op.
func (s *Service) DeleteRecord(dbID, recordID string) error {
	_, err := s.mutate(dbID, func(db *types.Database) error {
		return db.DeleteRecord(recordID)
	})
	return err
}
