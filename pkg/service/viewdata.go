package service

import (
	"time"

	"github.com/mesh-intelligence/gridstore/pkg/viewengine"
)

// GetViewData runs the view engine read path for one view: filtered,
// sorted (and, for grid/kanban, grouped) records plus the projected
// visible fields. An empty viewID resolves to the default view.
func (s *Service) GetViewData(dbID, viewID string) (*viewengine.ViewData, error) {
	db, err := s.GetDatabase(dbID)
	if err != nil {
		return nil, err
	}
	view := db.DefaultView()
	if viewID != "" {
		view, err = db.View(viewID)
		if err != nil {
			return nil, err
		}
	}
	data := viewengine.Build(db.Records, db.Fields, view)
	return &data, nil
}

// GetCalendarData buckets a view's filtered, sorted records by
// calendar day over the requested window. The window is per-call
// state, never persisted on the view.
func (s *Service) GetCalendarData(dbID, viewID string, from, to time.Time) ([]viewengine.DayBucket, error) {
	db, err := s.GetDatabase(dbID)
	if err != nil {
		return nil, err
	}
	view := db.DefaultView()
	if viewID != "" {
		view, err = db.View(viewID)
		if err != nil {
			return nil, err
		}
	}
	data := viewengine.Build(db.Records, db.Fields, view)
	return viewengine.CalendarBuckets(data.Records, db.Fields, view, from, to), nil
}
