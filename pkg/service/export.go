package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	// FormatXLSX is a spreadsheet placeholder: the payload is delimited
	// text, suitable for spreadsheet import.
	FormatXLSX = "xlsx"
)

// ExportConfig selects the target format and optionally restricts the
// exported columns. IncludeFields lists field IDs in the desired column
// order; empty means all fields in their own order.
type ExportConfig struct {
	Format        string   `json:"format"`
	IncludeFields []string `json:"include_fields,omitempty"`
}

// ExportDatabase produces a byte payload for the database. JSON
// preserves the full aggregate shape; CSV (and the xlsx placeholder)
// emits one header row of field display names in selection order
// followed by one row per record with each cell stringified.
// Returns ErrExport for an unsupported format.
func (s *Service) ExportDatabase(id string, cfg ExportConfig) ([]byte, error) {
	db, err := s.GetDatabase(id)
	if err != nil {
		return nil, err
	}
	fields := selectFields(db, cfg.IncludeFields)

	switch cfg.Format {
	case FormatJSON:
		return exportJSON(db, fields, cfg.IncludeFields)
	case FormatCSV, FormatXLSX:
		return exportDelimited(db, fields)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", types.ErrExport, cfg.Format)
	}
}

// selectFields resolves IncludeFields into field definitions in
// selection order, skipping unknown IDs. An empty selection yields all
// fields ordered by their own column order.
func selectFields(db *types.Database, include []string) []types.FieldDefinition {
	if len(include) == 0 {
		out := make([]types.FieldDefinition, len(db.Fields))
		copy(out, db.Fields)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
		return out
	}
	out := make([]types.FieldDefinition, 0, len(include))
	for _, id := range include {
		if f, err := db.Field(id); err == nil {
			out = append(out, *f)
		}
	}
	return out
}

// exportJSON marshals the aggregate. When a column selection is given,
// the field list and each record's data are restricted to it, but the
// aggregate shape is preserved.
func exportJSON(db *types.Database, fields []types.FieldDefinition, include []string) ([]byte, error) {
	if len(include) == 0 {
		return json.MarshalIndent(db, "", "  ")
	}
	keep := make(map[string]bool, len(fields))
	for _, f := range fields {
		keep[f.FieldID] = true
	}
	clone := *db
	clone.Fields = fields
	clone.Records = make([]*types.Record, 0, len(db.Records))
	for _, rec := range db.Records {
		cp := *rec
		cp.Data = make(map[string]any, len(fields))
		for k, v := range rec.Data {
			if keep[k] {
				cp.Data[k] = v
			}
		}
		clone.Records = append(clone.Records, &cp)
	}
	return json.MarshalIndent(&clone, "", "  ")
}

// exportDelimited writes a header row of display names and one
// stringified row per record.
func exportDelimited(db *types.Database, fields []types.FieldDefinition) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Name
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrExport, err)
	}

	row := make([]string, len(fields))
	for _, rec := range db.Records {
		for i, f := range fields {
			row[i] = types.Stringify(rec.Value(f.FieldID))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrExport, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrExport, err)
	}
	return buf.Bytes(), nil
}
