package types

import "errors"

// Error taxonomy. Every store and service operation either returns a
// successful result or fails with exactly one of these kinds, wrapped
// with context via fmt.Errorf("%w: ...") and matched with errors.Is.
var (
	// ErrNotFound reports an unknown database, field, record, or view ID.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports a rejected mutation: missing required field
	// on create, deleting the primary field, deleting the last remaining
	// view, or an unsupported field/view type.
	ErrValidation = errors.New("validation failed")

	// ErrImport reports a payload that fails to parse as JSON or
	// delimited text, or a row that fails create validation.
	ErrImport = errors.New("import failed")

	// ErrExport reports an unsupported export target format.
	ErrExport = errors.New("export failed")

	// ErrAIGeneration reports a generator collaborator failure or an
	// attempt to generate a value for a non-AI field.
	ErrAIGeneration = errors.New("ai generation failed")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
