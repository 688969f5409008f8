package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/gridstore/internal/memstore"
	"github.com/mesh-intelligence/gridstore/pkg/template"
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// fakeGenerator returns a canned value, or fails when broken.
type fakeGenerator struct {
	value      any
	confidence float64
	broken     bool
	lastReq    types.AIGenerateRequest
}

func (g *fakeGenerator) Generate(_ context.Context, req types.AIGenerateRequest) (types.AIGenerateResult, error) {
	g.lastReq = req
	if g.broken {
		return types.AIGenerateResult{}, errors.New("model unavailable")
	}
	return types.AIGenerateResult{Value: g.value, Confidence: g.confidence}, nil
}

func newTestService() *Service {
	return New(memstore.New(), nil, nil)
}

func TestCreateDatabaseMinimal(t *testing.T) {
	s := newTestService()
	db, err := s.CreateDatabase("Notes", "")
	require.NoError(t, err)

	loaded, err := s.GetDatabase(db.DatabaseID)
	require.NoError(t, err)
	assert.Equal(t, "Notes", loaded.Name)
	require.Len(t, loaded.Fields, 1)
	assert.True(t, loaded.Fields[0].IsPrimary)
	require.Len(t, loaded.Views, 1)
	assert.True(t, loaded.Views[0].IsDefault)
}

func TestCreateDatabaseFromTemplate(t *testing.T) {
	s := newTestService()
	db, err := s.CreateDatabase("Pipeline", template.CRM)
	require.NoError(t, err)

	loaded, err := s.GetDatabase(db.DatabaseID)
	require.NoError(t, err)
	assert.Equal(t, "Pipeline", loaded.Name)
	assert.Len(t, loaded.Fields, 7)
	assert.Len(t, loaded.Views, 2)
	assert.Len(t, loaded.Records, 2)

	_, err = s.CreateDatabase("X", "no-such-template")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetDatabaseNotFound(t *testing.T) {
	s := newTestService()
	_, err := s.GetDatabase("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteDatabase(t *testing.T) {
	s := newTestService()
	db, err := s.CreateDatabase("Temp", "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteDatabase(db.DatabaseID))
	_, err = s.GetDatabase(db.DatabaseID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, s.DeleteDatabase(db.DatabaseID), types.ErrNotFound)
}

func TestListDatabases(t *testing.T) {
	s := newTestService()
	_, err := s.CreateDatabase("One", "")
	require.NoError(t, err)
	_, err = s.CreateDatabase("Two", "")
	require.NoError(t, err)

	summaries, err := s.ListDatabases()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	names := []string{summaries[0].Name, summaries[1].Name}
	assert.ElementsMatch(t, []string{"One", "Two"}, names)
}

func TestMutationsPersistAcrossLoads(t *testing.T) {
	store := memstore.New()
	s := New(store, nil, nil)
	db, err := s.CreateDatabase("Durable", "")
	require.NoError(t, err)
	titleID := db.Fields[0].FieldID

	_, err = s.AddField(db.DatabaseID, types.FieldDefinition{Name: "Score", Type: types.FieldTypeNumber})
	require.NoError(t, err)
	rec, err := s.AddRecord(db.DatabaseID, map[string]any{titleID: "persisted"})
	require.NoError(t, err)

	// A second service over the same store sees the committed state.
	s2 := New(store, nil, nil)
	loaded, err := s2.GetDatabase(db.DatabaseID)
	require.NoError(t, err)
	assert.Len(t, loaded.Fields, 2)
	got, err := loaded.RecordByID(rec.RecordID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Value(titleID))
}

func TestFailedMutationLeavesStoreUntouched(t *testing.T) {
	s := newTestService()
	db, err := s.CreateDatabase("Safe", "")
	require.NoError(t, err)
	primaryID := db.Fields[0].FieldID

	err = s.DeleteField(db.DatabaseID, primaryID)
	assert.ErrorIs(t, err, types.ErrValidation)

	loaded, err := s.GetDatabase(db.DatabaseID)
	require.NoError(t, err)
	assert.Len(t, loaded.Fields, 1, "rejected mutation must not be persisted")
}

func TestGetViewDataDefaultResolution(t *testing.T) {
	s := newTestService()
	db, err := s.CreateDatabase("Views", "")
	require.NoError(t, err)
	titleID := db.Fields[0].FieldID
	_, err = s.AddRecord(db.DatabaseID, map[string]any{titleID: "row"})
	require.NoError(t, err)

	// Empty view ID resolves the default view.
	data, err := s.GetViewData(db.DatabaseID, "")
	require.NoError(t, err)
	assert.Equal(t, db.Views[0].ViewID, data.View.ViewID)
	assert.Len(t, data.Records, 1)

	_, err = s.GetViewData(db.DatabaseID, "missing-view")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestKanbanReassignIsAPlainRecordUpdate(t *testing.T) {
	s := newTestService()
	db, err := s.CreateDatabase("Deals", template.CRM)
	require.NoError(t, err)

	var sectorID, boardID string
	for _, f := range db.Fields {
		if f.Name == "Sector" {
			sectorID = f.FieldID
		}
	}
	for _, v := range db.Views {
		if v.Type == types.ViewTypeKanban {
			boardID = v.ViewID
		}
	}
	require.NotEmpty(t, sectorID)
	require.NotEmpty(t, boardID)

	// Acme Robotics starts in the Tech column.
	data, err := s.GetViewData(db.DatabaseID, boardID)
	require.NoError(t, err)
	require.Equal(t, "Tech", data.Groups[0].Key)
	require.Len(t, data.Groups[0].Records, 1)
	acme := data.Groups[0].Records[0].RecordID

	// Dragging the card is nothing but an update of the group field.
	_, err = s.UpdateRecord(db.DatabaseID, acme, map[string]any{sectorID: "Finance"})
	require.NoError(t, err)

	data, err = s.GetViewData(db.DatabaseID, boardID)
	require.NoError(t, err)
	assert.Empty(t, data.Groups[0].Records, "Tech column is now empty")
	assert.Equal(t, "Finance", data.Groups[1].Key)
	assert.Equal(t, []string{acme}, []string{data.Groups[1].Records[0].RecordID})
}

func TestGenerateAIField(t *testing.T) {
	gen := &fakeGenerator{value: "growth stock", confidence: 0.87}
	s := New(memstore.New(), gen, nil)

	db, err := s.CreateDatabase("Research", "")
	require.NoError(t, err)
	titleID := db.Fields[0].FieldID
	aiField, err := s.AddField(db.DatabaseID, types.FieldDefinition{
		Name: "Summary", Type: types.FieldTypeAIGenerated,
		Config: types.FieldConfig{Prompt: "summarize the record"},
	})
	require.NoError(t, err)
	rec, err := s.AddRecord(db.DatabaseID, map[string]any{titleID: "AAPL"})
	require.NoError(t, err)

	// Generation on a non-AI field is a validation failure.
	_, err = s.GenerateAIField(context.Background(), db.DatabaseID, titleID, rec.RecordID)
	assert.ErrorIs(t, err, types.ErrValidation)

	// AI must be enabled on the database first.
	_, err = s.GenerateAIField(context.Background(), db.DatabaseID, aiField.FieldID, rec.RecordID)
	assert.ErrorIs(t, err, types.ErrValidation)

	loaded, err := s.GetDatabase(db.DatabaseID)
	require.NoError(t, err)
	loaded.Settings.EnableAI = true
	require.NoError(t, s.SaveDatabase(loaded))

	updated, err := s.GenerateAIField(context.Background(), db.DatabaseID, aiField.FieldID, rec.RecordID)
	require.NoError(t, err)
	assert.Equal(t, "growth stock", updated.Value(aiField.FieldID))
	assert.Equal(t, "Research", gen.lastReq.DatabaseName)
	assert.Equal(t, "Summary", gen.lastReq.FieldName)

	// Generator failures surface as the retryable AI error kind.
	gen.broken = true
	_, err = s.GenerateAIField(context.Background(), db.DatabaseID, aiField.FieldID, rec.RecordID)
	assert.ErrorIs(t, err, types.ErrAIGeneration)
}

func TestGenerateAIFieldWithoutGenerator(t *testing.T) {
	s := newTestService()
	db, err := s.CreateDatabase("NoAI", "")
	require.NoError(t, err)
	db.Settings.EnableAI = true
	require.NoError(t, s.SaveDatabase(db))

	aiField, err := s.AddField(db.DatabaseID, types.FieldDefinition{Name: "S", Type: types.FieldTypeAIGenerated})
	require.NoError(t, err)
	rec, err := s.AddRecord(db.DatabaseID, map[string]any{})
	require.NoError(t, err)

	_, err = s.GenerateAIField(context.Background(), db.DatabaseID, aiField.FieldID, rec.RecordID)
	assert.ErrorIs(t, err, types.ErrAIGeneration)
}
