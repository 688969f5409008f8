package service

import (
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// AddField appends a field to the database and persists the aggregate.
func (s *Service) AddField(dbID string, def types.FieldDefinition) (*types.FieldDefinition, error) {
	var out *types.FieldDefinition
	_, err := s.mutate(dbID, func(db *types.Database) error {
		f, err := db.AddField(def)
		if err != nil {
			return err
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("field added", "database_id", dbID, "field_id", out.FieldID, "type", out.Type)
	return out, nil
}

// UpdateField merges a patch into a field definition and persists.
func (s *Service) UpdateField(dbID, fieldID string, patch types.FieldPatch) (*types.FieldDefinition, error) {
	var out *types.FieldDefinition
	_, err := s.mutate(dbID, func(db *types.Database) error {
		f, err := db.UpdateField(fieldID, patch)
		if err != nil {
			return err
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteField removes a field, stripping its values from every record,
// and persists. The primary field is never deletable.
func (s *Service) DeleteField(dbID, fieldID string) error {
	_, err := s.mutate(dbID, func(db *types.Database) error {
		return db.DeleteField(fieldID)
	})
	if err != nil {
		return err
	}
	s.logger.Debugw("field deleted", "database_id", dbID, "field_id", fieldID)
	return nil
}
