package types

// BlobStore persists each Database aggregate as one opaque,
// self-describing blob keyed by database ID. There is no partial or
// field-level persistence: filters, sorts, and groups are recomputed on
// every read, never materialized.
type BlobStore interface {
	// Put stores or replaces the blob for the given database ID.
	Put(id string, blob []byte) error

	// Get retrieves the blob for the given database ID.
	// Returns ErrNotFound if no blob exists for that ID.
	Get(id string) ([]byte, error)

	// Delete removes the blob for the given database ID.
	// Returns ErrNotFound if no blob exists for that ID.
	Delete(id string) error

	// List returns the IDs of all stored databases.
	List() ([]string, error)

	// Close releases backend resources. Idempotent.
	Close() error
}
