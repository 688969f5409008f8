package service

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// GenerateAIField asks the generator collaborator for a value for one
// ai-generated field on one record, then writes it through the normal
// record-update path so coercion applies. Returns ErrValidation when
// the field's type is not ai-generated or AI is disabled on the
// database, and ErrAIGeneration when the collaborator fails. Generation
// is retryable; the caller wraps this call with its own timeout via ctx.
func (s *Service) GenerateAIField(ctx context.Context, dbID, fieldID, recordID string) (*types.Record, error) {
	db, err := s.GetDatabase(dbID)
	if err != nil {
		return nil, err
	}
	f, err := db.Field(fieldID)
	if err != nil {
		return nil, err
	}
	if f.Type != types.FieldTypeAIGenerated {
		return nil, fmt.Errorf("%w: field %q is not ai-generated", types.ErrValidation, f.Name)
	}
	if !db.Settings.EnableAI {
		return nil, fmt.Errorf("%w: ai generation is disabled for this database", types.ErrValidation)
	}
	rec, err := db.RecordByID(recordID)
	if err != nil {
		return nil, err
	}
	if s.ai == nil {
		return nil, fmt.Errorf("%w: no generator configured", types.ErrAIGeneration)
	}

	res, err := s.ai.Generate(ctx, types.AIGenerateRequest{
		DatabaseName: db.Name,
		FieldName:    f.Name,
		RecordData:   rec.CloneData(),
		FieldConfig:  f.Config,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrAIGeneration, err)
	}
	s.logger.Infow("ai field generated",
		"database_id", dbID, "field_id", fieldID, "record_id", recordID,
		"confidence", res.Confidence)

	return s.UpdateRecord(dbID, recordID, map[string]any{fieldID: res.Value})
}
