package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Import formats.
const (
	ImportJSON = "json"
	ImportCSV  = "csv"
)

// ImportMapping maps a source column name to a target field ID. Only
// mapped columns are imported; the mapping UI is the caller's concern.
type ImportMapping map[string]string

// ImportData parses the payload into raw rows, builds record data from
// the mapping, and creates one record per row. Import is all-or-nothing:
// every row is pre-validated against create rules before any record is
// written, and the aggregate is persisted once, after all rows are in.
// A parse failure or a row failing validation returns ErrImport and
// leaves the database unchanged. Returns the number of records created.
// An unsupported format is ErrValidation.
func (s *Service) ImportData(id string, payload []byte, format string, mapping ImportMapping) (int, error) {
	db, err := s.GetDatabase(id)
	if err != nil {
		return 0, err
	}

	var rows []map[string]any
	switch format {
	case ImportJSON:
		rows, err = parseJSONRows(payload)
	case ImportCSV:
		rows, err = parseDelimitedRows(payload)
	default:
		return 0, fmt.Errorf("%w: unsupported import format %q", types.ErrValidation, format)
	}
	if err != nil {
		return 0, err
	}

	data := make([]map[string]any, len(rows))
	for i, row := range rows {
		rec := make(map[string]any, len(mapping))
		for sourceColumn, targetFieldID := range mapping {
			if v, ok := row[sourceColumn]; ok {
				rec[targetFieldID] = v
			}
		}
		data[i] = rec
	}

	// Pre-validation pass: no record is written unless every row passes.
	for i, rec := range data {
		if err := db.ValidateForCreate(rec); err != nil {
			return 0, fmt.Errorf("%w: row %d: %v", types.ErrImport, i+1, err)
		}
	}

	for i, rec := range data {
		if _, err := db.AddRecord(rec); err != nil {
			// The aggregate is discarded without saving, so earlier rows
			// of this batch are not committed.
			return 0, fmt.Errorf("%w: row %d: %v", types.ErrImport, i+1, err)
		}
	}
	if err := s.SaveDatabase(db); err != nil {
		return 0, err
	}
	s.logger.Infow("import complete", "database_id", id, "rows", len(data), "format", format)
	return len(data), nil
}

// parseJSONRows accepts either a JSON array of objects or a full
// exported database aggregate, in which case each record's data map
// becomes one row keyed by field ID.
func parseJSONRows(payload []byte) ([]map[string]any, error) {
	var rows []map[string]any
	if err := json.Unmarshal(payload, &rows); err == nil {
		return rows, nil
	}
	var db types.Database
	if err := json.Unmarshal(payload, &db); err != nil || db.DatabaseID == "" {
		return nil, fmt.Errorf("%w: payload is neither a JSON row array nor an exported database", types.ErrImport)
	}
	rows = make([]map[string]any, 0, len(db.Records))
	for _, rec := range db.Records {
		rows = append(rows, rec.CloneData())
	}
	return rows, nil
}

// parseDelimitedRows reads headered delimited text; the first row names
// the source columns.
func parseDelimitedRows(payload []byte) ([]map[string]any, error) {
	r := csv.NewReader(bytes.NewReader(payload))
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrImport, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: payload has no header row", types.ErrImport)
	}
	header := all[0]
	rows := make([]map[string]any, 0, len(all)-1)
	for _, cells := range all[1:] {
		row := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
