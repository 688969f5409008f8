package viewengine

import (
	"sort"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Project computes the visible field list for a view: the VisibleFields
// allow-list (when present) intersected with non-hidden fields, ordered
// by the view's FieldOrder override when given, else by each field's
// own order.
func Project(fields []types.FieldDefinition, cfg types.ViewConfig) []types.FieldDefinition {
	var allow map[string]bool
	if len(cfg.VisibleFields) > 0 {
		allow = make(map[string]bool, len(cfg.VisibleFields))
		for _, id := range cfg.VisibleFields {
			allow[id] = true
		}
	}

	out := make([]types.FieldDefinition, 0, len(fields))
	for _, f := range fields {
		if f.IsHidden {
			continue
		}
		if allow != nil && !allow[f.FieldID] {
			continue
		}
		out = append(out, f)
	}

	override := make(map[string]int, len(cfg.FieldOrder))
	for i, id := range cfg.FieldOrder {
		override[id] = i
	}

	sort.SliceStable(out, func(i, j int) bool {
		oi, okI := override[out[i].FieldID]
		oj, okJ := override[out[j].FieldID]
		switch {
		case okI && okJ:
			return oi < oj
		case okI:
			return true // overridden fields come before the rest
		case okJ:
			return false
		default:
			return out[i].Order < out[j].Order
		}
	})
	return out
}
