package types

import "time"

// View types. Grid, kanban, and calendar have specified projection
// behavior; the remaining types are stored and listed but render
// client-side.
const (
	ViewTypeGrid     = "grid"
	ViewTypeKanban   = "kanban"
	ViewTypeCalendar = "calendar"
	ViewTypeGallery  = "gallery"
	ViewTypeForm     = "form"
	ViewTypeGantt    = "gantt"
	ViewTypeTimeline = "timeline"
)

// validViewTypes is the set of recognized view types.
var validViewTypes = map[string]bool{
	ViewTypeGrid:     true,
	ViewTypeKanban:   true,
	ViewTypeCalendar: true,
	ViewTypeGallery:  true,
	ViewTypeForm:     true,
	ViewTypeGantt:    true,
	ViewTypeTimeline: true,
}

// IsValidViewType reports whether the given string is a recognized view type.
func IsValidViewType(vt string) bool {
	return validViewTypes[vt]
}

// Filter operators.
const (
	OpEq          = "eq"
	OpNe          = "ne"
	OpContains    = "contains"
	OpNotContains = "notContains"
	OpIsEmpty     = "isEmpty"
	OpIsNotEmpty  = "isNotEmpty"
	OpGt          = "gt"
	OpLt          = "lt"
	OpGte         = "gte"
	OpLte         = "lte"
	OpBetween     = "between"
	OpIn          = "in"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterCondition is one declarative predicate over a field's value.
// All conditions on a view combine with logical AND.
type FilterCondition struct {
	FieldID  string `json:"field_id"`
	Operator string `json:"operator"`
	Value    any    `json:"value,omitempty"`
}

// SortConfig is one key of a stable multi-key sort.
type SortConfig struct {
	FieldID   string `json:"field_id"`
	Direction string `json:"direction"` // SortAsc or SortDesc.
}

// ViewConfig holds the declarative projection settings for a view.
// Filters, sorts, and groups are re-evaluated on every read and never
// materialized. The display-binding keys at the bottom are meaningful
// only for specific view types.
type ViewConfig struct {
	Filters       []FilterCondition `json:"filters,omitempty"`
	Sorts         []SortConfig      `json:"sorts,omitempty"`
	Groups        []string          `json:"groups,omitempty"` // Field IDs; only the first entry is honored.
	VisibleFields []string          `json:"visible_fields,omitempty"`
	FieldOrder    []string          `json:"field_order,omitempty"`

	GroupByField string   `json:"group_by_field,omitempty"` // Kanban column field.
	DateField    string   `json:"date_field,omitempty"`     // Calendar bucketing field.
	TitleField   string   `json:"title_field,omitempty"`
	ColorField   string   `json:"color_field,omitempty"`
	CardFields   []string `json:"card_fields,omitempty"`
}

// ViewDefinition is a saved projection over a Database's records.
type ViewDefinition struct {
	ViewID    string     `json:"view_id"` // UUID v7, generated on creation.
	Name      string     `json:"name"`
	Type      string     `json:"type"` // One of the ViewType constants.
	IsDefault bool       `json:"is_default,omitempty"`
	Order     int        `json:"order"`
	Config    ViewConfig `json:"config"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ViewPatch is a partial update for a view definition. Nil members are
// left unchanged. Setting IsDefault to true demotes the previous
// default; setting it to false is ignored so the exactly-one-default
// invariant holds.
type ViewPatch struct {
	Name      *string     `json:"name,omitempty"`
	Order     *int        `json:"order,omitempty"`
	IsDefault *bool       `json:"is_default,omitempty"`
	Config    *ViewConfig `json:"config,omitempty"`
}
