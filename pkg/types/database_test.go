package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stockDatabase builds a database with a required primary text field
// and a number field, the shape used across these tests.
func stockDatabase(t *testing.T) (*Database, string, string) {
	t.Helper()
	db := NewDatabase("Watchlist")
	primary := db.PrimaryField()
	require.NotNil(t, primary)
	primary.Name = "title"
	primary.Config.Required = true

	rsi, err := db.AddField(FieldDefinition{Name: "rsi", Type: FieldTypeNumber})
	require.NoError(t, err)
	return db, primary.FieldID, rsi.FieldID
}

func TestNewDatabaseShape(t *testing.T) {
	db := NewDatabase("Fresh")

	require.Len(t, db.Fields, 1)
	assert.True(t, db.Fields[0].IsPrimary)
	assert.Equal(t, FieldTypeText, db.Fields[0].Type)

	require.Len(t, db.Views, 1)
	assert.True(t, db.Views[0].IsDefault)
	assert.Equal(t, ViewTypeGrid, db.Views[0].Type)
	assert.Empty(t, db.Records)
}

func TestAddRecordRequiredField(t *testing.T) {
	db, titleID, rsiID := stockDatabase(t)

	// A record with the required field set succeeds; rsi may be absent.
	rec, err := db.AddRecord(map[string]any{titleID: "AAPL review"})
	require.NoError(t, err)
	assert.Equal(t, "AAPL review", rec.Value(titleID))
	assert.Nil(t, rec.Value(rsiID))

	// An empty record fails, citing the required field by name.
	_, err = db.AddRecord(map[string]any{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "title")
}

func TestUpdateRecordSkipsRequiredValidation(t *testing.T) {
	db, titleID, rsiID := stockDatabase(t)
	rec, err := db.AddRecord(map[string]any{titleID: "MSFT review"})
	require.NoError(t, err)

	// The patch omits the required title field; that is not an error.
	updated, err := db.UpdateRecord(rec.RecordID, map[string]any{rsiID: "61.8"})
	require.NoError(t, err)
	assert.Equal(t, 61.8, updated.Value(rsiID))
	assert.Equal(t, "MSFT review", updated.Value(titleID))
}

func TestUpdateRecordCoercesAndDropsUnknownKeys(t *testing.T) {
	db, titleID, rsiID := stockDatabase(t)
	rec, err := db.AddRecord(map[string]any{titleID: "NVDA review", rsiID: "70"})
	require.NoError(t, err)
	assert.Equal(t, 70.0, rec.Value(rsiID))

	updated, err := db.UpdateRecord(rec.RecordID, map[string]any{
		rsiID:       55,
		"ghost-key": "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, 55.0, updated.Value(rsiID))
	assert.Nil(t, updated.Value("ghost-key"))

	_, err = db.UpdateRecord("no-such-record", map[string]any{rsiID: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFieldCascadesToRecords(t *testing.T) {
	db, titleID, rsiID := stockDatabase(t)
	for _, title := range []string{"a", "b", "c"} {
		_, err := db.AddRecord(map[string]any{titleID: title, rsiID: 50})
		require.NoError(t, err)
	}

	require.NoError(t, db.DeleteField(rsiID))

	_, err := db.Field(rsiID)
	assert.ErrorIs(t, err, ErrNotFound)
	for _, rec := range db.Records {
		_, stale := rec.Data[rsiID]
		assert.False(t, stale, "deleted field id must be stripped, not just ignored")
	}
}

func TestDeleteFieldPrimaryProtected(t *testing.T) {
	db, titleID, _ := stockDatabase(t)

	err := db.DeleteField(titleID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// Still present, still primary.
	f, err := db.Field(titleID)
	require.NoError(t, err)
	assert.True(t, f.IsPrimary)
}

func TestAddFieldRejectsSecondPrimary(t *testing.T) {
	db, _, _ := stockDatabase(t)
	_, err := db.AddField(FieldDefinition{Name: "other", Type: FieldTypeText, IsPrimary: true})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddFieldRejectsUnknownType(t *testing.T) {
	db, _, _ := stockDatabase(t)
	_, err := db.AddField(FieldDefinition{Name: "x", Type: "hologram"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSchemaLockBlocksFieldMutations(t *testing.T) {
	db, _, rsiID := stockDatabase(t)
	db.Settings.SchemaLocked = true

	_, err := db.AddField(FieldDefinition{Name: "x", Type: FieldTypeText})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, db.DeleteField(rsiID), ErrValidation)

	db.Settings.SchemaLocked = false
	assert.NoError(t, db.DeleteField(rsiID))
}

func TestFieldOrderAssignment(t *testing.T) {
	db, _, _ := stockDatabase(t)
	f3, err := db.AddField(FieldDefinition{Name: "sector", Type: FieldTypeSingleSelect})
	require.NoError(t, err)
	assert.Equal(t, 3, f3.Order)

	// Orders keep growing past the current maximum after deletions.
	require.NoError(t, db.DeleteField(f3.FieldID))
	f4, err := db.AddField(FieldDefinition{Name: "notes", Type: FieldTypeText})
	require.NoError(t, err)
	assert.Equal(t, 3, f4.Order)
}

func TestUpdateFieldPatch(t *testing.T) {
	db, _, rsiID := stockDatabase(t)

	newName := "RSI (14)"
	hidden := true
	f, err := db.UpdateField(rsiID, FieldPatch{Name: &newName, IsHidden: &hidden})
	require.NoError(t, err)
	assert.Equal(t, "RSI (14)", f.Name)
	assert.True(t, f.IsHidden)
	assert.Equal(t, FieldTypeNumber, f.Type)

	_, err = db.UpdateField("missing", FieldPatch{Name: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAutoValuesOnCreateAndUpdate(t *testing.T) {
	db, titleID, _ := stockDatabase(t)
	created, err := db.AddField(FieldDefinition{Name: "Created", Type: FieldTypeCreatedTime})
	require.NoError(t, err)
	modified, err := db.AddField(FieldDefinition{Name: "Touched", Type: FieldTypeLastModifiedTime})
	require.NoError(t, err)
	autoNum, err := db.AddField(FieldDefinition{Name: "#", Type: FieldTypeAutoNumber})
	require.NoError(t, err)

	r1, err := db.AddRecord(map[string]any{titleID: "first"})
	require.NoError(t, err)
	assert.NotNil(t, r1.Value(created.FieldID))
	assert.NotNil(t, r1.Value(modified.FieldID))
	assert.Equal(t, 1, r1.Value(autoNum.FieldID))

	r2, err := db.AddRecord(map[string]any{titleID: "second"})
	require.NoError(t, err)
	assert.Equal(t, 2, r2.Value(autoNum.FieldID))

	// Created-time survives updates untouched, even when patched.
	createdBefore := r1.Value(created.FieldID)
	_, err = db.UpdateRecord(r1.RecordID, map[string]any{
		created.FieldID: "2001-01-01T00:00:00Z",
		autoNum.FieldID: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, createdBefore, r1.Value(created.FieldID))
	assert.Equal(t, 1, r1.Value(autoNum.FieldID))
}

func TestAutoNumberDuplicatesAfterDeletion(t *testing.T) {
	// Ordinal-at-insertion semantics: deleting a record and inserting a
	// new one reuses the freed ordinal.
	db, titleID, _ := stockDatabase(t)
	autoNum, err := db.AddField(FieldDefinition{Name: "#", Type: FieldTypeAutoNumber})
	require.NoError(t, err)

	r1, err := db.AddRecord(map[string]any{titleID: "one"})
	require.NoError(t, err)
	r2, err := db.AddRecord(map[string]any{titleID: "two"})
	require.NoError(t, err)
	assert.Equal(t, 1, r1.Value(autoNum.FieldID))
	assert.Equal(t, 2, r2.Value(autoNum.FieldID))

	require.NoError(t, db.DeleteRecord(r1.RecordID))
	r3, err := db.AddRecord(map[string]any{titleID: "three"})
	require.NoError(t, err)
	assert.Equal(t, 2, r3.Value(autoNum.FieldID), "same ordinal as the surviving record")
}

func TestDeleteRecordAbsentIsNotFound(t *testing.T) {
	db, _, _ := stockDatabase(t)
	assert.ErrorIs(t, db.DeleteRecord("nope"), ErrNotFound)
}

func TestDeleteViewProtectsLastView(t *testing.T) {
	db, _, _ := stockDatabase(t)
	only := db.Views[0]

	// Deleting the only view fails even though it is the default.
	err := db.DeleteView(only.ViewID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// Adding a second view, then deleting the first, succeeds.
	second, err := db.AddView(ViewDefinition{Name: "Board", Type: ViewTypeKanban})
	require.NoError(t, err)
	require.NoError(t, db.DeleteView(only.ViewID))

	// The remaining view is promoted to default.
	require.Len(t, db.Views, 1)
	assert.Equal(t, second.ViewID, db.Views[0].ViewID)
	assert.True(t, db.Views[0].IsDefault)
}

func TestAddViewDefaultHandling(t *testing.T) {
	db, _, _ := stockDatabase(t)
	first := db.Views[0].ViewID

	v2, err := db.AddView(ViewDefinition{Name: "Board", Type: ViewTypeKanban, IsDefault: true})
	require.NoError(t, err)
	assert.True(t, v2.IsDefault)

	old, err := db.View(first)
	require.NoError(t, err)
	assert.False(t, old.IsDefault)
	assert.Equal(t, v2.ViewID, db.DefaultView().ViewID)

	_, err = db.AddView(ViewDefinition{Name: "Bad", Type: "hologram"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateViewPatch(t *testing.T) {
	db, titleID, _ := stockDatabase(t)
	v := db.Views[0]

	cfg := v.Config
	cfg.Sorts = []SortConfig{{FieldID: titleID, Direction: SortAsc}}
	name := "Sorted Grid"
	out, err := db.UpdateView(v.ViewID, ViewPatch{Name: &name, Config: &cfg})
	require.NoError(t, err)
	assert.Equal(t, "Sorted Grid", out.Name)
	require.Len(t, out.Config.Sorts, 1)

	_, err = db.UpdateView("missing", ViewPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"memory ok", Config{Backend: BackendMemory}, nil},
		{"sqlite ok", Config{Backend: BackendSQLite, DataDir: "/tmp/x"}, nil},
		{"bbolt ok", Config{Backend: BackendBolt}, nil},
		{"empty backend", Config{}, ErrBackendEmpty},
		{"unknown backend", Config{Backend: "etcd"}, ErrBackendUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
