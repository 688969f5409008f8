package types

import "time"

// SelectOption is a declared choice for single-select and multi-select
// fields. Kanban views seed one column per option.
type SelectOption struct {
	OptionID string `json:"option_id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
}

// FieldConfig carries type-specific field settings. Only the keys
// meaningful for the field's type are populated.
type FieldConfig struct {
	Required  bool           `json:"required,omitempty"`
	Options   []SelectOption `json:"options,omitempty"`
	Min       *float64       `json:"min,omitempty"`
	Max       *float64       `json:"max,omitempty"`
	Precision *int           `json:"precision,omitempty"`
	MaxRating int            `json:"max_rating,omitempty"`
	// Prompt seeds the AI generator for ai-generated fields.
	Prompt string `json:"prompt,omitempty"`
}

// FieldDefinition is a typed column on a Database.
type FieldDefinition struct {
	FieldID   string      `json:"field_id"` // UUID v7, generated on creation.
	Name      string      `json:"name"`
	Type      string      `json:"type"`  // One of the FieldType constants.
	Order     int         `json:"order"` // Default column position; lower orders first.
	IsPrimary bool        `json:"is_primary,omitempty"`
	IsHidden  bool        `json:"is_hidden,omitempty"`
	Config    FieldConfig `json:"config"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// FieldPatch is a partial update for a field definition. Nil members
// are left unchanged. The field type is deliberately not patchable:
// changing a type under existing record values is unsafe.
type FieldPatch struct {
	Name     *string      `json:"name,omitempty"`
	Order    *int         `json:"order,omitempty"`
	IsHidden *bool        `json:"is_hidden,omitempty"`
	Config   *FieldConfig `json:"config,omitempty"`
}

// OptionNames returns the declared option names in declaration order.
func (f *FieldDefinition) OptionNames() []string {
	names := make([]string, 0, len(f.Config.Options))
	for _, opt := range f.Config.Options {
		names = append(names, opt.Name)
	}
	return names
}
