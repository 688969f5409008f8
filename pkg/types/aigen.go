package types

import "context"

// AIGenerateRequest describes one value-generation request for an
// ai-generated field on one record.
type AIGenerateRequest struct {
	DatabaseName string
	FieldName    string
	RecordData   map[string]any
	FieldConfig  FieldConfig
}

// AIGenerateResult is the generator's answer: a value for the field and
// the generator's confidence in it, in [0, 1].
type AIGenerateResult struct {
	Value      any
	Confidence float64
}

// AIGenerator produces values for ai-generated fields. The record store
// only knows this contract, not the algorithm behind it. Failures are
// surfaced to callers as ErrAIGeneration; generation is the one
// retryable category alongside store I/O.
type AIGenerator interface {
	Generate(ctx context.Context, req AIGenerateRequest) (AIGenerateResult, error)
}
