// Package template provides the static catalog of predefined database
// shapes used at creation time. A template carries fields, views, and
// sample records without identifiers; IDs are minted at instantiation.
// View configurations inside a template reference fields by name and
// are rewritten to field IDs when the template is instantiated.
package template

import (
	"fmt"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Template is one predefined database shape.
type Template struct {
	TemplateID    string
	Name          string
	Description   string
	Icon          string
	Fields        []types.FieldDefinition
	Views         []types.ViewDefinition
	SampleRecords []map[string]any // Values keyed by field name.
}

// Built-in template IDs.
const (
	TaskTracker     = "task-tracker"
	CRM             = "crm"
	ContentCalendar = "content-calendar"
)

func floatPtr(f float64) *float64 { return &f }

// builtInTemplates defines the catalog shipped with the module.
var builtInTemplates = []Template{
	{
		TemplateID:  TaskTracker,
		Name:        "Task Tracker",
		Description: "Track tasks through statuses with priorities and due dates",
		Icon:        "check-square",
		Fields: []types.FieldDefinition{
			{Name: "Task", Type: types.FieldTypeText, IsPrimary: true, Config: types.FieldConfig{Required: true}},
			{Name: "Status", Type: types.FieldTypeSingleSelect, Config: types.FieldConfig{Options: []types.SelectOption{
				{Name: "Todo", Color: "gray"},
				{Name: "In Progress", Color: "blue"},
				{Name: "Done", Color: "green"},
			}}},
			{Name: "Priority", Type: types.FieldTypeSingleSelect, Config: types.FieldConfig{Options: []types.SelectOption{
				{Name: "High", Color: "red"},
				{Name: "Medium", Color: "yellow"},
				{Name: "Low", Color: "gray"},
			}}},
			{Name: "Due", Type: types.FieldTypeDate},
			{Name: "Done Ratio", Type: types.FieldTypeProgress, Config: types.FieldConfig{Min: floatPtr(0), Max: floatPtr(100)}},
			{Name: "Created", Type: types.FieldTypeCreatedTime},
		},
		Views: []types.ViewDefinition{
			{Name: "All Tasks", Type: types.ViewTypeGrid, IsDefault: true},
			{Name: "Board", Type: types.ViewTypeKanban, Config: types.ViewConfig{
				GroupByField: "Status",
				TitleField:   "Task",
				CardFields:   []string{"Priority", "Due"},
			}},
		},
		SampleRecords: []map[string]any{
			{"Task": "Set up the workspace", "Status": "Done", "Priority": "High", "Done Ratio": 100},
			{"Task": "Invite the team", "Status": "In Progress", "Priority": "Medium", "Done Ratio": 40},
			{"Task": "Plan the first sprint", "Status": "Todo", "Priority": "High"},
		},
	},
	{
		TemplateID:  CRM,
		Name:        "CRM",
		Description: "Contacts grouped by sector with deal sizes",
		Icon:        "users",
		Fields: []types.FieldDefinition{
			{Name: "Company", Type: types.FieldTypeText, IsPrimary: true, Config: types.FieldConfig{Required: true}},
			{Name: "Sector", Type: types.FieldTypeSingleSelect, Config: types.FieldConfig{Options: []types.SelectOption{
				{Name: "Tech", Color: "blue"},
				{Name: "Finance", Color: "green"},
				{Name: "Energy", Color: "orange"},
			}}},
			{Name: "Contact Email", Type: types.FieldTypeEmail},
			{Name: "Phone", Type: types.FieldTypePhone},
			{Name: "Deal Size", Type: types.FieldTypeCurrency, Config: types.FieldConfig{Precision: intPtr(2)}},
			{Name: "Rating", Type: types.FieldTypeRating, Config: types.FieldConfig{MaxRating: 5}},
			{Name: "Website", Type: types.FieldTypeURL},
		},
		Views: []types.ViewDefinition{
			{Name: "Contacts", Type: types.ViewTypeGrid, IsDefault: true},
			{Name: "By Sector", Type: types.ViewTypeKanban, Config: types.ViewConfig{
				GroupByField: "Sector",
				TitleField:   "Company",
				CardFields:   []string{"Deal Size", "Rating"},
			}},
		},
		SampleRecords: []map[string]any{
			{"Company": "Acme Robotics", "Sector": "Tech", "Deal Size": 120000, "Rating": 4},
			{"Company": "Northwind Capital", "Sector": "Finance", "Deal Size": 85000, "Rating": 3},
		},
	},
	{
		TemplateID:  ContentCalendar,
		Name:        "Content Calendar",
		Description: "Plan publications on a calendar",
		Icon:        "calendar",
		Fields: []types.FieldDefinition{
			{Name: "Title", Type: types.FieldTypeText, IsPrimary: true, Config: types.FieldConfig{Required: true}},
			{Name: "Publish Date", Type: types.FieldTypeDate},
			{Name: "Channel", Type: types.FieldTypeMultiSelect, Config: types.FieldConfig{Options: []types.SelectOption{
				{Name: "Blog"},
				{Name: "Newsletter"},
				{Name: "Social"},
			}}},
			{Name: "Ready", Type: types.FieldTypeCheckbox},
			{Name: "Last Touched", Type: types.FieldTypeLastModifiedTime},
		},
		Views: []types.ViewDefinition{
			{Name: "Calendar", Type: types.ViewTypeCalendar, IsDefault: true, Config: types.ViewConfig{
				DateField:  "Publish Date",
				TitleField: "Title",
			}},
			{Name: "All Content", Type: types.ViewTypeGrid},
		},
		SampleRecords: []map[string]any{
			{"Title": "Launch announcement", "Publish Date": "2026-09-07", "Channel": []string{"Blog", "Social"}, "Ready": true},
			{"Title": "Monthly digest", "Publish Date": "2026-09-30", "Channel": "Newsletter"},
		},
	},
}

func intPtr(i int) *int { return &i }

// List returns all templates in the catalog.
func List() []Template {
	out := make([]Template, len(builtInTemplates))
	copy(out, builtInTemplates)
	return out
}

// Get returns the template with the given ID.
// Returns types.ErrNotFound if the ID is not in the catalog.
func Get(id string) (Template, error) {
	for _, t := range builtInTemplates {
		if t.TemplateID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: template %s", types.ErrNotFound, id)
}
