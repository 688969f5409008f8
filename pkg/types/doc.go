// Package types defines the Database aggregate, field type registry,
// view configuration shapes, the BlobStore interface, and standard
// error types for the gridstore record store.
package types
