package types

import "time"

// Record is one row of a Database: a mapping from field ID to value.
// The value shape depends on the referenced field's type (scalar, list,
// or structured). Only fields currently defined on the Database are
// meaningful keys; deleting a field strips its key from every record.
type Record struct {
	RecordID  string         `json:"record_id"` // UUID v7, generated on creation.
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Value returns the stored value for the given field ID, or nil when
// the record holds no value for it.
func (r *Record) Value(fieldID string) any {
	if r.Data == nil {
		return nil
	}
	return r.Data[fieldID]
}

// CloneData returns a copy of the record's data map. Returns an empty
// map (not nil) when no values are set.
func (r *Record) CloneData() map[string]any {
	out := make(map[string]any, len(r.Data))
	for k, v := range r.Data {
		out[k] = v
	}
	return out
}
