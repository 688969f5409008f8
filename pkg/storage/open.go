// Package storage provides the public factory for BlobStore backends
// while keeping implementation details internal.
package storage

import (
	"github.com/mesh-intelligence/gridstore/internal/boltstore"
	"github.com/mesh-intelligence/gridstore/internal/memstore"
	"github.com/mesh-intelligence/gridstore/internal/sqlitestore"
	"github.com/mesh-intelligence/gridstore/pkg/types"
)

// Open validates the config and opens the selected BlobStore backend.
//
// Example:
//
//	store, err := storage.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".gridstore",
//	})
//	defer store.Close()
func Open(config types.Config) (types.BlobStore, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch config.Backend {
	case types.BackendMemory:
		return memstore.New(), nil
	case types.BackendSQLite:
		return sqlitestore.Open(config.DataDir)
	case types.BackendBolt:
		return boltstore.Open(config.DataDir)
	default:
		return nil, types.ErrBackendUnknown
	}
}
