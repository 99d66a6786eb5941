// Package blobstore abstracts where dataset files live, so the tooling
// can write generated data to the local filesystem or straight into
// object storage with the same code path.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is a destination and source for immutable dataset blobs.
type Store interface {
	// Put writes a blob atomically under the given name, fully
	// replacing any previous content. size may be -1 if unknown.
	Put(ctx context.Context, name string, r io.Reader, size int64) error

	// Open opens a blob for reading. The caller closes the reader on
	// every exit path.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
