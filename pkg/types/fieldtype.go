package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field types determine what values a field accepts and how raw input
// is coerced on write.
const (
	FieldTypeText             = "text"
	FieldTypeNumber           = "number"
	FieldTypeCurrency         = "currency"
	FieldTypePercent          = "percent"
	FieldTypeDate             = "date"
	FieldTypeDateTime         = "datetime"
	FieldTypeSingleSelect     = "single-select"
	FieldTypeMultiSelect      = "multi-select"
	FieldTypeCheckbox         = "checkbox"
	FieldTypeURL              = "url"
	FieldTypeEmail            = "email"
	FieldTypePhone            = "phone"
	FieldTypeRating           = "rating"
	FieldTypeProgress         = "progress"
	FieldTypeAttachment       = "attachment"
	FieldTypeFormula          = "formula"
	FieldTypeAIGenerated      = "ai-generated"
	FieldTypeCreatedTime      = "created-time"
	FieldTypeLastModifiedTime = "last-modified-time"
	FieldTypeAutoNumber       = "auto-number"
	FieldTypeCreatedBy        = "created-by"
	FieldTypeLastModifiedBy   = "last-modified-by"
	FieldTypeLookup           = "lookup"
	FieldTypeRollup           = "rollup"
	FieldTypeBarcode          = "barcode"
	FieldTypeButton           = "button"
)

// validFieldTypes is the set of recognized field types.
var validFieldTypes = map[string]bool{
	FieldTypeText:             true,
	FieldTypeNumber:           true,
	FieldTypeCurrency:         true,
	FieldTypePercent:          true,
	FieldTypeDate:             true,
	FieldTypeDateTime:         true,
	FieldTypeSingleSelect:     true,
	FieldTypeMultiSelect:      true,
	FieldTypeCheckbox:         true,
	FieldTypeURL:              true,
	FieldTypeEmail:            true,
	FieldTypePhone:            true,
	FieldTypeRating:           true,
	FieldTypeProgress:         true,
	FieldTypeAttachment:       true,
	FieldTypeFormula:          true,
	FieldTypeAIGenerated:      true,
	FieldTypeCreatedTime:      true,
	FieldTypeLastModifiedTime: true,
	FieldTypeAutoNumber:       true,
	FieldTypeCreatedBy:        true,
	FieldTypeLastModifiedBy:   true,
	FieldTypeLookup:           true,
	FieldTypeRollup:           true,
	FieldTypeBarcode:          true,
	FieldTypeButton:           true,
}

// IsValidFieldType reports whether the given string is a recognized field type.
func IsValidFieldType(ft string) bool {
	return validFieldTypes[ft]
}

// numericFieldTypes are coerced to float64 on write.
var numericFieldTypes = map[string]bool{
	FieldTypeNumber:   true,
	FieldTypeCurrency: true,
	FieldTypePercent:  true,
	FieldTypeRating:   true,
	FieldTypeProgress: true,
}

// temporalFieldTypes are coerced to a canonical RFC 3339 UTC string on write.
var temporalFieldTypes = map[string]bool{
	FieldTypeDate:     true,
	FieldTypeDateTime: true,
}

// Coerce normalizes a raw value for a field of the given type.
// Numeric types coerce to float64, temporal types to an RFC 3339 UTC
// string, checkbox to bool, multi-select to []string (a scalar wraps
// into a singleton). All other types pass the value through unchanged.
// A nil raw value is always nil.
func Coerce(fieldType string, raw any) any {
	if raw == nil {
		return nil
	}
	switch {
	case numericFieldTypes[fieldType]:
		return coerceNumber(raw)
	case temporalFieldTypes[fieldType]:
		return coerceTimestamp(raw)
	case fieldType == FieldTypeCheckbox:
		return coerceBool(raw)
	case fieldType == FieldTypeMultiSelect:
		return coerceStringList(raw)
	default:
		return raw
	}
}

// coerceNumber converts numeric-looking values to float64.
// Unparseable values coerce to nil rather than erroring.
func coerceNumber(raw any) any {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return f
	default:
		return nil
	}
}

// timestampLayouts are the accepted input formats for date and datetime
// values, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// coerceTimestamp converts temporal values to a canonical RFC 3339 UTC
// string. Unrecognized strings pass through unchanged so the original
// input is not destroyed.
func coerceTimestamp(raw any) any {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC().Format(time.RFC3339)
			}
		}
		return v
	case float64:
		return unixToRFC3339(int64(v))
	case int64:
		return unixToRFC3339(v)
	case int:
		return unixToRFC3339(int64(v))
	default:
		return nil
	}
}

// unixToRFC3339 interprets an epoch number as seconds, or milliseconds
// when the magnitude makes seconds implausible.
func unixToRFC3339(n int64) string {
	if n > 1e12 || n < -1e12 {
		return time.UnixMilli(n).UTC().Format(time.RFC3339)
	}
	return time.Unix(n, 0).UTC().Format(time.RFC3339)
}

// coerceBool converts truthy values to bool.
func coerceBool(raw any) any {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "checked":
			return true
		default:
			return false
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return false
	}
}

// coerceStringList converts a value to []string, wrapping a scalar into
// a singleton list.
func coerceStringList(raw any) any {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, Stringify(item))
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{Stringify(v)}
	}
}

// AutoValueOnCreate returns the computed value assigned to a field of
// the given type when a record is created, and whether the type is
// auto-valued at creation. Created-time and last-modified-time receive
// the creation timestamp; auto-number receives recordCount+1, the
// ordinal at insertion time. Auto-numbers are not reserved from a
// monotonic counter, so deletions can lead to duplicate ordinals on
// later inserts.
func AutoValueOnCreate(fieldType string, recordCount int, now time.Time) (any, bool) {
	switch fieldType {
	case FieldTypeCreatedTime, FieldTypeLastModifiedTime:
		return now.UTC().Format(time.RFC3339), true
	case FieldTypeAutoNumber:
		return recordCount + 1, true
	default:
		return nil, false
	}
}

// AutoValueOnWrite returns the computed value assigned to a field of
// the given type on every write, and whether the type is refreshed on
// write. Only last-modified-time qualifies; created-time and
// auto-number are assigned once, at creation.
func AutoValueOnWrite(fieldType string, now time.Time) (any, bool) {
	if fieldType == FieldTypeLastModifiedTime {
		return now.UTC().Format(time.RFC3339), true
	}
	return nil, false
}

// IsComputed reports whether values of the given field type are derived
// automatically rather than user-entered.
func IsComputed(fieldType string) bool {
	switch fieldType {
	case FieldTypeCreatedTime, FieldTypeLastModifiedTime, FieldTypeAutoNumber,
		FieldTypeCreatedBy, FieldTypeLastModifiedBy:
		return true
	default:
		return false
	}
}

// IsEmptyValue reports whether a field value counts as empty: nil, an
// empty or blank string, or an empty list. Used by required-field
// validation and by the isEmpty/isNotEmpty filter operators.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

// Stringify renders a field value as text, for delimited export cells
// and list coercion. Structured values serialize to their JSON form.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case []string:
		return strings.Join(val, ", ")
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
