package template

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Instantiate clones the template into a fresh Database aggregate,
// minting new identifiers for every field, view, and record while
// preserving their relative order. Field references inside view
// configurations (declared by name in templates) are rewritten to the
// minted field IDs; names resolving to no field are left as written and
// stay inert in the view engine. Sample records run through the normal
// record-creation path, so coercion and the auto-value policy apply.
func (t Template) Instantiate(name string) (*types.Database, error) {
	now := time.Now().UTC()
	db := &types.Database{
		DatabaseID:  types.NewID(),
		Name:        name,
		Description: t.Description,
		Icon:        t.Icon,
		Fields:      make([]types.FieldDefinition, 0, len(t.Fields)),
		Views:       make([]types.ViewDefinition, 0, len(t.Views)),
		Records:     []*types.Record{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if name == "" {
		db.Name = t.Name
	}

	idByName := make(map[string]string, len(t.Fields))
	for i, f := range t.Fields {
		f.FieldID = types.NewID()
		f.Order = i + 1
		f.CreatedAt = now
		f.UpdatedAt = now
		idByName[f.Name] = f.FieldID
		db.Fields = append(db.Fields, f)
	}

	for i, v := range t.Views {
		v.ViewID = types.NewID()
		v.Order = i + 1
		v.Config = rewriteConfig(v.Config, idByName)
		v.CreatedAt = now
		v.UpdatedAt = now
		db.Views = append(db.Views, v)
	}

	for _, sample := range t.SampleRecords {
		data := make(map[string]any, len(sample))
		for fieldName, value := range sample {
			if id, ok := idByName[fieldName]; ok {
				data[id] = value
			}
		}
		if _, err := db.AddRecord(data); err != nil {
			return nil, fmt.Errorf("seeding template %s: %w", t.TemplateID, err)
		}
	}
	return db, nil
}

// rewriteConfig maps field names in a template view configuration to
// the minted field IDs.
func rewriteConfig(cfg types.ViewConfig, idByName map[string]string) types.ViewConfig {
	resolve := func(ref string) string {
		if id, ok := idByName[ref]; ok {
			return id
		}
		return ref
	}
	resolveAll := func(refs []string) []string {
		if refs == nil {
			return nil
		}
		out := make([]string, len(refs))
		for i, ref := range refs {
			out[i] = resolve(ref)
		}
		return out
	}

	out := cfg
	out.GroupByField = resolve(cfg.GroupByField)
	out.DateField = resolve(cfg.DateField)
	out.TitleField = resolve(cfg.TitleField)
	out.ColorField = resolve(cfg.ColorField)
	out.Groups = resolveAll(cfg.Groups)
	out.VisibleFields = resolveAll(cfg.VisibleFields)
	out.FieldOrder = resolveAll(cfg.FieldOrder)
	out.CardFields = resolveAll(cfg.CardFields)

	if cfg.Filters != nil {
		out.Filters = make([]types.FilterCondition, len(cfg.Filters))
		for i, c := range cfg.Filters {
			c.FieldID = resolve(c.FieldID)
			out.Filters[i] = c
		}
	}
	if cfg.Sorts != nil {
		out.Sorts = make([]types.SortConfig, len(cfg.Sorts))
		for i, s := range cfg.Sorts {
			s.FieldID = resolve(s.FieldID)
			out.Sorts[i] = s
		}
	}
	return out
}
