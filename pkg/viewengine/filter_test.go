package viewengine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

func textField(id, name string) types.FieldDefinition {
	return types.FieldDefinition{FieldID: id, Name: name, Type: types.FieldTypeText}
}

func numberField(id, name string) types.FieldDefinition {
	return types.FieldDefinition{FieldID: id, Name: name, Type: types.FieldTypeNumber}
}

func rec(id string, data map[string]any) *types.Record {
	return &types.Record{RecordID: id, Data: data}
}

func recordIDs(records []*types.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.RecordID
	}
	return out
}

func TestFilterOperators(t *testing.T) {
	fields := []types.FieldDefinition{
		textField("name", "Name"),
		numberField("score", "Score"),
		{FieldID: "tags", Name: "Tags", Type: types.FieldTypeMultiSelect},
	}
	records := []*types.Record{
		rec("r1", map[string]any{"name": "Apple", "score": 5.0, "tags": []string{"fruit", "red"}}),
		rec("r2", map[string]any{"name": "Banana", "score": 9.0, "tags": []string{"fruit"}}),
		rec("r3", map[string]any{"name": "", "score": 2.0}),
	}

	tests := []struct {
		name string
		cond types.FilterCondition
		want []string
	}{
		{"eq", types.FilterCondition{FieldID: "name", Operator: types.OpEq, Value: "Apple"}, []string{"r1"}},
		{"eq numeric string", types.FilterCondition{FieldID: "score", Operator: types.OpEq, Value: "9"}, []string{"r2"}},
		{"ne", types.FilterCondition{FieldID: "name", Operator: types.OpNe, Value: "Apple"}, []string{"r2", "r3"}},
		{"contains substring", types.FilterCondition{FieldID: "name", Operator: types.OpContains, Value: "an"}, []string{"r2"}},
		{"contains membership", types.FilterCondition{FieldID: "tags", Operator: types.OpContains, Value: "red"}, []string{"r1"}},
		{"notContains", types.FilterCondition{FieldID: "tags", Operator: types.OpNotContains, Value: "red"}, []string{"r2", "r3"}},
		{"isEmpty", types.FilterCondition{FieldID: "name", Operator: types.OpIsEmpty}, []string{"r3"}},
		{"isNotEmpty", types.FilterCondition{FieldID: "name", Operator: types.OpIsNotEmpty}, []string{"r1", "r2"}},
		{"gt", types.FilterCondition{FieldID: "score", Operator: types.OpGt, Value: 4}, []string{"r1", "r2"}},
		{"lt", types.FilterCondition{FieldID: "score", Operator: types.OpLt, Value: 5}, []string{"r3"}},
		{"gte", types.FilterCondition{FieldID: "score", Operator: types.OpGte, Value: 5}, []string{"r1", "r2"}},
		{"lte", types.FilterCondition{FieldID: "score", Operator: types.OpLte, Value: 5}, []string{"r1", "r3"}},
		{"between", types.FilterCondition{FieldID: "score", Operator: types.OpBetween, Value: []any{3, 8}}, []string{"r1"}},
		{"in", types.FilterCondition{FieldID: "name", Operator: types.OpIn, Value: []any{"Apple", "Banana"}}, []string{"r1", "r2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, fields, []types.FilterCondition{tt.cond})
			assert.Equal(t, tt.want, recordIDs(got))
		})
	}
}

func TestFilterConditionsAreANDed(t *testing.T) {
	fields := []types.FieldDefinition{textField("name", "Name"), numberField("score", "Score")}
	records := []*types.Record{
		rec("r1", map[string]any{"name": "Apple", "score": 5.0}),
		rec("r2", map[string]any{"name": "Apple", "score": 9.0}),
	}
	got := Filter(records, fields, []types.FilterCondition{
		{FieldID: "name", Operator: types.OpEq, Value: "Apple"},
		{FieldID: "score", Operator: types.OpGt, Value: 6},
	})
	assert.Equal(t, []string{"r2"}, recordIDs(got))
}

func TestFilterUnknownFieldIsInert(t *testing.T) {
	fields := []types.FieldDefinition{textField("name", "Name")}
	records := []*types.Record{
		rec("r1", map[string]any{"name": "Apple"}),
		rec("r2", map[string]any{"name": "Banana"}),
	}
	got := Filter(records, fields, []types.FilterCondition{
		{FieldID: "deleted-field", Operator: types.OpEq, Value: "anything"},
	})
	assert.Len(t, got, 2, "a condition on a deleted field always passes")
}

func TestFilterMonotonicity(t *testing.T) {
	// Adding conditions can only shrink the result set.
	fields := []types.FieldDefinition{textField("name", "Name"), numberField("score", "Score")}
	records := []*types.Record{
		rec("r1", map[string]any{"name": "Apple", "score": 5.0}),
		rec("r2", map[string]any{"name": "Banana", "score": 9.0}),
		rec("r3", map[string]any{"name": "Cherry", "score": 2.0}),
		rec("r4", map[string]any{"score": 7.0}),
	}
	f1 := []types.FilterCondition{
		{FieldID: "score", Operator: types.OpGte, Value: 2},
	}
	f2 := append(append([]types.FilterCondition{}, f1...), types.FilterCondition{
		FieldID: "name", Operator: types.OpIsNotEmpty,
	})
	f3 := append(append([]types.FilterCondition{}, f2...), types.FilterCondition{
		FieldID: "score", Operator: types.OpLt, Value: 6,
	})

	n1 := len(Filter(records, fields, f1))
	n2 := len(Filter(records, fields, f2))
	n3 := len(Filter(records, fields, f3))
	assert.GreaterOrEqual(t, n1, n2)
	assert.GreaterOrEqual(t, n2, n3)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	fields := []types.FieldDefinition{numberField("score", "Score")}
	records := []*types.Record{
		rec("r1", map[string]any{"score": 1.0}),
		rec("r2", map[string]any{"score": 2.0}),
	}
	_ = Filter(records, fields, []types.FilterCondition{
		{FieldID: "score", Operator: types.OpGt, Value: 1},
	})
	assert.Equal(t, []string{"r1", "r2"}, recordIDs(records))
}
