package viewengine

import (
	"sort"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Sort orders records by the sort keys in sequence: the first key with
// a non-zero comparison decides; ties fall through to the next key; if
// all keys tie, the original relative order is preserved. Stability is
// guaranteed, not incidental. Keys referencing unknown fields are
// skipped. Returns a new slice; the input is not modified.
func Sort(records []*types.Record, fields []types.FieldDefinition, sorts []types.SortConfig) []*types.Record {
	out := make([]*types.Record, len(records))
	copy(out, records)
	if len(sorts) == 0 {
		return out
	}

	active := make([]types.SortConfig, 0, len(sorts))
	for _, s := range sorts {
		if fieldByID(fields, s.FieldID) != nil {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range active {
			c := compareForSort(out[i].Value(key.FieldID), out[j].Value(key.FieldID))
			if c == 0 {
				continue
			}
			if key.Direction == types.SortDesc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}

// compareForSort orders two values for sorting. Empty values sort
// before non-empty ones in ascending order.
func compareForSort(a, b any) int {
	aEmpty := types.IsEmptyValue(a)
	bEmpty := types.IsEmptyValue(b)
	switch {
	case aEmpty && bEmpty:
		return 0
	case aEmpty:
		return -1
	case bEmpty:
		return 1
	}
	c, ok := compareValues(a, b)
	if !ok {
		return 0
	}
	return c
}
