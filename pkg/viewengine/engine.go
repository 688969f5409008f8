// Package viewengine implements the pure projection pipeline for
// database views: filter, stable multi-key sort, single-level grouping,
// and visible-field projection. The engine performs no I/O, never
// mutates its inputs, and never fails: conditions referencing unknown
// fields are inert and malformed configuration degrades to a pass-through.
package viewengine

import (
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// ViewData is the read-path result for one view: the filtered, sorted
// record list, the projected visible fields, and, for grid views with a
// group field or kanban views, the partitioned buckets.
type ViewData struct {
	View    *types.ViewDefinition   `json:"view"`
	Records []*types.Record         `json:"records"`
	Fields  []types.FieldDefinition `json:"fields"`
	Groups  []Group                 `json:"groups,omitempty"`
}

// Build runs the full pipeline for one view over an immutable snapshot
// of records and fields. Stages apply in fixed order: filter, sort,
// group, project.
func Build(records []*types.Record, fields []types.FieldDefinition, view *types.ViewDefinition) ViewData {
	out := Filter(records, fields, view.Config.Filters)
	out = Sort(out, fields, view.Config.Sorts)

	data := ViewData{
		View:    view,
		Records: out,
		Fields:  Project(fields, view.Config),
	}

	switch view.Type {
	case types.ViewTypeGrid:
		if len(view.Config.Groups) > 0 {
			if f := fieldByID(fields, view.Config.Groups[0]); f != nil {
				data.Groups = GroupRecords(out, f, false)
			}
		}
	case types.ViewTypeKanban:
		if f := fieldByID(fields, view.Config.GroupByField); f != nil {
			data.Groups = GroupRecords(out, f, true)
		}
	}
	return data
}

// fieldByID returns the field with the given ID, or nil. A nil result
// makes the referencing configuration inert rather than an error.
func fieldByID(fields []types.FieldDefinition, id string) *types.FieldDefinition {
	if id == "" {
		return nil
	}
	for i := range fields {
		if fields[i].FieldID == id {
			return &fields[i]
		}
	}
	return nil
}
