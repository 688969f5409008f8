package types

import (
	"fmt"
	"time"
)

// DatabaseSettings are feature toggles carried on the aggregate.
type DatabaseSettings struct {
	// SchemaLocked rejects field additions and deletions while set.
	SchemaLocked bool `json:"schema_locked,omitempty"`
	// EnableAI allows value generation for ai-generated fields.
	EnableAI bool `json:"enable_ai,omitempty"`
}

// Database is the aggregate root: an ordered field list, an ordered
// view list, an unordered record list, and settings. Invariants held by
// every mutator, on success and failure alike: exactly one field is
// primary and it is never removable; the view list never becomes empty.
type Database struct {
	DatabaseID  string            `json:"database_id"` // UUID v7, generated on creation.
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Fields      []FieldDefinition `json:"fields"`
	Views       []ViewDefinition  `json:"views"`
	Records     []*Record         `json:"records"`
	Settings    DatabaseSettings  `json:"settings"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewDatabase creates a minimal Database: one primary text field and
// one default grid view.
func NewDatabase(name string) *Database {
	now := time.Now().UTC()
	return &Database{
		DatabaseID: NewID(),
		Name:       name,
		Fields: []FieldDefinition{{
			FieldID:   NewID(),
			Name:      "Name",
			Type:      FieldTypeText,
			Order:     1,
			IsPrimary: true,
			CreatedAt: now,
			UpdatedAt: now,
		}},
		Views: []ViewDefinition{{
			ViewID:    NewID(),
			Name:      "Grid",
			Type:      ViewTypeGrid,
			IsDefault: true,
			Order:     1,
			CreatedAt: now,
			UpdatedAt: now,
		}},
		Records:   []*Record{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// touch refreshes the aggregate's modification timestamp.
func (d *Database) touch() {
	d.UpdatedAt = time.Now().UTC()
}

// Field returns the field definition with the given ID.
// Returns ErrNotFound if no such field exists.
func (d *Database) Field(id string) (*FieldDefinition, error) {
	for i := range d.Fields {
		if d.Fields[i].FieldID == id {
			return &d.Fields[i], nil
		}
	}
	return nil, fmt.Errorf("%w: field %s", ErrNotFound, id)
}

// PrimaryField returns the field marked primary, or nil if the
// aggregate is malformed and has none.
func (d *Database) PrimaryField() *FieldDefinition {
	for i := range d.Fields {
		if d.Fields[i].IsPrimary {
			return &d.Fields[i]
		}
	}
	return nil
}

// View returns the view definition with the given ID.
// Returns ErrNotFound if no such view exists.
func (d *Database) View(id string) (*ViewDefinition, error) {
	for i := range d.Views {
		if d.Views[i].ViewID == id {
			return &d.Views[i], nil
		}
	}
	return nil, fmt.Errorf("%w: view %s", ErrNotFound, id)
}

// DefaultView returns the view flagged default, falling back to the
// first view when no flag is set.
func (d *Database) DefaultView() *ViewDefinition {
	for i := range d.Views {
		if d.Views[i].IsDefault {
			return &d.Views[i]
		}
	}
	if len(d.Views) > 0 {
		return &d.Views[0]
	}
	return nil
}

// RecordByID returns the record with the given ID.
// Returns ErrNotFound if no such record exists.
func (d *Database) RecordByID(id string) (*Record, error) {
	for _, r := range d.Records {
		if r.RecordID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: record %s", ErrNotFound, id)
}

// maxFieldOrder returns the highest field order, or 0 when there are
// no fields.
func (d *Database) maxFieldOrder() int {
	max := 0
	for i := range d.Fields {
		if d.Fields[i].Order > max {
			max = d.Fields[i].Order
		}
	}
	return max
}

// AddField appends a new field with order max+1. A missing ID is
// generated. Returns ErrValidation for an unrecognized type, a second
// primary field, or a locked schema.
func (d *Database) AddField(def FieldDefinition) (*FieldDefinition, error) {
	if d.Settings.SchemaLocked {
		return nil, fmt.Errorf("%w: schema is locked", ErrValidation)
	}
	if !IsValidFieldType(def.Type) {
		return nil, fmt.Errorf("%w: unknown field type %q", ErrValidation, def.Type)
	}
	if def.IsPrimary && d.PrimaryField() != nil {
		return nil, fmt.Errorf("%w: database already has a primary field", ErrValidation)
	}
	now := time.Now().UTC()
	if def.FieldID == "" {
		def.FieldID = NewID()
	}
	def.Order = d.maxFieldOrder() + 1
	def.CreatedAt = now
	def.UpdatedAt = now
	d.Fields = append(d.Fields, def)
	d.touch()
	return &d.Fields[len(d.Fields)-1], nil
}

// UpdateField merges a patch into an existing field definition.
// Returns ErrNotFound if the ID is absent. The field's type is never
// changed.
func (d *Database) UpdateField(id string, patch FieldPatch) (*FieldDefinition, error) {
	f, err := d.Field(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Order != nil {
		f.Order = *patch.Order
	}
	if patch.IsHidden != nil {
		f.IsHidden = *patch.IsHidden
	}
	if patch.Config != nil {
		f.Config = *patch.Config
	}
	f.UpdatedAt = time.Now().UTC()
	d.touch()
	return f, nil
}

// DeleteField removes a field and strips its key from every record's
// data, as one all-or-nothing unit. Returns ErrValidation if the field
// is primary or the schema is locked, ErrNotFound if the ID is absent.
func (d *Database) DeleteField(id string) error {
	if d.Settings.SchemaLocked {
		return fmt.Errorf("%w: schema is locked", ErrValidation)
	}
	f, err := d.Field(id)
	if err != nil {
		return err
	}
	if f.IsPrimary {
		return fmt.Errorf("%w: cannot delete the primary field", ErrValidation)
	}
	kept := d.Fields[:0]
	for i := range d.Fields {
		if d.Fields[i].FieldID != id {
			kept = append(kept, d.Fields[i])
		}
	}
	d.Fields = kept
	for _, r := range d.Records {
		delete(r.Data, id)
	}
	d.touch()
	return nil
}

// ValidateForCreate checks that every required field has a non-empty
// value in the supplied data. Returns ErrValidation citing the first
// missing required field, in field order.
func (d *Database) ValidateForCreate(data map[string]any) error {
	for i := range d.Fields {
		f := &d.Fields[i]
		if !f.Config.Required || IsComputed(f.Type) {
			continue
		}
		if IsEmptyValue(data[f.FieldID]) {
			return fmt.Errorf("%w: missing required field %q", ErrValidation, f.Name)
		}
	}
	return nil
}

// ValidateForUpdate checks a partial update patch. Required-ness is
// deliberately not re-enforced here: a patch may omit required fields
// without error. The asymmetry with ValidateForCreate is a design
// decision, not an omission.
func (d *Database) ValidateForUpdate(patch map[string]any) error {
	return nil
}

// AddRecord creates a record from raw data: required-field validation,
// then per-field coercion and the auto-value policy across all current
// fields. Keys that name no current field are dropped. Returns
// ErrValidation citing the first missing required field.
func (d *Database) AddRecord(data map[string]any) (*Record, error) {
	if err := d.ValidateForCreate(data); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rec := &Record{
		RecordID:  NewID(),
		Data:      make(map[string]any, len(d.Fields)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range d.Fields {
		f := &d.Fields[i]
		if v, ok := AutoValueOnCreate(f.Type, len(d.Records), now); ok {
			rec.Data[f.FieldID] = v
			continue
		}
		if raw, ok := data[f.FieldID]; ok {
			if v := Coerce(f.Type, raw); v != nil {
				rec.Data[f.FieldID] = v
			}
		}
	}
	d.Records = append(d.Records, rec)
	d.touch()
	return rec, nil
}

// UpdateRecord coerces and merges a patch into an existing record and
// refreshes every last-modified-time field. Patch keys naming no
// current field are dropped; patches to computed fields are ignored.
// Required-field validation is not run on update.
func (d *Database) UpdateRecord(id string, patch map[string]any) (*Record, error) {
	rec, err := d.RecordByID(id)
	if err != nil {
		return nil, err
	}
	if err := d.ValidateForUpdate(patch); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range d.Fields {
		f := &d.Fields[i]
		if v, ok := AutoValueOnWrite(f.Type, now); ok {
			rec.Data[f.FieldID] = v
			continue
		}
		raw, ok := patch[f.FieldID]
		if !ok || IsComputed(f.Type) {
			continue
		}
		v := Coerce(f.Type, raw)
		if v == nil {
			delete(rec.Data, f.FieldID)
			continue
		}
		rec.Data[f.FieldID] = v
	}
	rec.UpdatedAt = now
	d.touch()
	return rec, nil
}

// DeleteRecord removes a record by ID. Returns ErrNotFound if the ID
// is absent; deletion is not an idempotent no-op.
func (d *Database) DeleteRecord(id string) error {
	for i, r := range d.Records {
		if r.RecordID == id {
			d.Records = append(d.Records[:i], d.Records[i+1:]...)
			d.touch()
			return nil
		}
	}
	return fmt.Errorf("%w: record %s", ErrNotFound, id)
}

// maxViewOrder returns the highest view order, or 0 when there are no
// views.
func (d *Database) maxViewOrder() int {
	max := 0
	for i := range d.Views {
		if d.Views[i].Order > max {
			max = d.Views[i].Order
		}
	}
	return max
}

// AddView appends a new view with order max+1. The first view of a
// Database becomes default; a later view flagged default demotes the
// previous one. Returns ErrValidation for an unrecognized type.
func (d *Database) AddView(def ViewDefinition) (*ViewDefinition, error) {
	if !IsValidViewType(def.Type) {
		return nil, fmt.Errorf("%w: unknown view type %q", ErrValidation, def.Type)
	}
	now := time.Now().UTC()
	if def.ViewID == "" {
		def.ViewID = NewID()
	}
	def.Order = d.maxViewOrder() + 1
	def.CreatedAt = now
	def.UpdatedAt = now
	if len(d.Views) == 0 {
		def.IsDefault = true
	} else if def.IsDefault {
		for i := range d.Views {
			d.Views[i].IsDefault = false
		}
	}
	d.Views = append(d.Views, def)
	d.touch()
	return &d.Views[len(d.Views)-1], nil
}

// UpdateView merges a patch into an existing view definition.
// Returns ErrNotFound if the ID is absent.
func (d *Database) UpdateView(id string, patch ViewPatch) (*ViewDefinition, error) {
	v, err := d.View(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Order != nil {
		v.Order = *patch.Order
	}
	if patch.Config != nil {
		v.Config = *patch.Config
	}
	if patch.IsDefault != nil && *patch.IsDefault {
		for i := range d.Views {
			d.Views[i].IsDefault = d.Views[i].ViewID == id
		}
	}
	v.UpdatedAt = time.Now().UTC()
	d.touch()
	return v, nil
}

// DeleteView removes a view. Returns ErrValidation when the target is
// the database's only view, whether or not it is flagged default: the
// view list never becomes empty. Deleting the default view while others
// remain promotes the first remaining view.
func (d *Database) DeleteView(id string) error {
	v, err := d.View(id)
	if err != nil {
		return err
	}
	if len(d.Views) == 1 {
		return fmt.Errorf("%w: cannot delete the only view", ErrValidation)
	}
	wasDefault := v.IsDefault
	kept := d.Views[:0]
	for i := range d.Views {
		if d.Views[i].ViewID != id {
			kept = append(kept, d.Views[i])
		}
	}
	d.Views = kept
	if wasDefault {
		d.Views[0].IsDefault = true
	}
	d.touch()
	return nil
}
