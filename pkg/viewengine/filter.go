package viewengine

import (
	"strings"
	"time"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Filter returns the records satisfying every condition (logical AND).
// A condition referencing a field that no longer exists is inert:
// it always passes. The input slice is not modified.
func Filter(records []*types.Record, fields []types.FieldDefinition, conds []types.FilterCondition) []*types.Record {
	out := make([]*types.Record, 0, len(records))
	for _, rec := range records {
		if matchesAll(rec, fields, conds) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesAll(rec *types.Record, fields []types.FieldDefinition, conds []types.FilterCondition) bool {
	for _, cond := range conds {
		f := fieldByID(fields, cond.FieldID)
		if f == nil {
			continue // inert: the field was deleted
		}
		if !matches(rec.Value(f.FieldID), f, cond) {
			return false
		}
	}
	return true
}

// matches evaluates one condition against a stored value. Equality uses
// the coerced condition value; ordering uses numeric or date comparison
// with a lexicographic fallback. Malformed bounds (between without a
// two-element list, in without a list) are inert.
func matches(stored any, f *types.FieldDefinition, cond types.FilterCondition) bool {
	switch cond.Operator {
	case types.OpEq:
		return valuesEqual(stored, types.Coerce(f.Type, cond.Value))
	case types.OpNe:
		return !valuesEqual(stored, types.Coerce(f.Type, cond.Value))
	case types.OpContains:
		return containsValue(stored, cond.Value)
	case types.OpNotContains:
		return !containsValue(stored, cond.Value)
	case types.OpIsEmpty:
		return types.IsEmptyValue(stored)
	case types.OpIsNotEmpty:
		return !types.IsEmptyValue(stored)
	case types.OpGt:
		c, ok := compareValues(stored, types.Coerce(f.Type, cond.Value))
		return ok && c > 0
	case types.OpLt:
		c, ok := compareValues(stored, types.Coerce(f.Type, cond.Value))
		return ok && c < 0
	case types.OpGte:
		c, ok := compareValues(stored, types.Coerce(f.Type, cond.Value))
		return ok && c >= 0
	case types.OpLte:
		c, ok := compareValues(stored, types.Coerce(f.Type, cond.Value))
		return ok && c <= 0
	case types.OpBetween:
		bounds, ok := cond.Value.([]any)
		if !ok || len(bounds) != 2 {
			return true // malformed bound: inert
		}
		lo, okLo := compareValues(stored, types.Coerce(f.Type, bounds[0]))
		hi, okHi := compareValues(stored, types.Coerce(f.Type, bounds[1]))
		return okLo && okHi && lo >= 0 && hi <= 0
	case types.OpIn:
		options, ok := cond.Value.([]any)
		if !ok {
			return true // malformed list: inert
		}
		for _, opt := range options {
			if valuesEqual(stored, types.Coerce(f.Type, opt)) {
				return true
			}
		}
		return false
	default:
		return true // unknown operator: inert
	}
}

// containsValue implements the contains operator: substring match for
// text values, membership for list values. Text matching is
// case-insensitive.
func containsValue(stored, needle any) bool {
	want := types.Stringify(needle)
	switch v := stored.(type) {
	case []string:
		for _, item := range v {
			if item == want {
				return true
			}
		}
		return false
	case []any:
		for _, item := range v {
			if types.Stringify(item) == want {
				return true
			}
		}
		return false
	default:
		return strings.Contains(
			strings.ToLower(types.Stringify(stored)),
			strings.ToLower(want),
		)
	}
}

// valuesEqual compares two field values: numerically when both are
// numeric, otherwise by canonical text form.
func valuesEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	return types.Stringify(a) == types.Stringify(b)
}

// compareValues orders two field values: numeric ordering when both
// are numeric, date ordering when both parse as timestamps, and
// lexicographic ordering of the text forms otherwise. The second
// result is false only when either side is nil.
func compareValues(a, b any) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1, true
			case fa > fb:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	if ta, ok := toTime(a); ok {
		if tb, ok := toTime(b); ok {
			switch {
			case ta.Before(tb):
				return -1, true
			case ta.After(tb):
				return 1, true
			default:
				return 0, true
			}
		}
	}
	return strings.Compare(types.Stringify(a), types.Stringify(b)), true
}

// toFloat extracts a float64 from numeric value shapes.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// toTime parses a stored timestamp string.
func toTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
