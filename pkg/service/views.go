package service

import (
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// AddView appends a view to the database and persists the aggregate.
func (s *Service) AddView(dbID string, def types.ViewDefinition) (*types.ViewDefinition, error) {
	var out *types.ViewDefinition
	_, err := s.mutate(dbID, func(db *types.Database) error {
		v, err := db.AddView(def)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("view added", "database_id", dbID, "view_id", out.ViewID, "type", out.Type)
	return out, nil
}

// UpdateView merges a patch into a view definition and persists.
func (s *Service) UpdateView(dbID, viewID string, patch types.ViewPatch) (*types.ViewDefinition, error) {
	var out *types.ViewDefinition
	_, err := s.mutate(dbID, func(db *types.Database) error {
		v, err := db.UpdateView(viewID, patch)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteView removes a view and persists. The last remaining view is
// never deletable.
func (s *Service) DeleteView(dbID, viewID string) error {
	_, err := s.mutate(dbID, func(db *types.Database) error {
		return db.DeleteView(viewID)
	})
	return err
}
