package storage

import (
	"context"
	"io"
)

// ObjectStorage addresses objects by stable storage key. Retrieval URLs are
// derived, time-limited and never persisted.
type ObjectStorage interface {
	// Upload streams data to the store under the given key and returns the key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	// PresignedURL returns a time-limited retrieval URL for a key.
	PresignedURL(ctx context.Context, key string) (string, error)
	// Remove deletes the object behind a key. Idempotent.
	Remove(ctx context.Context, key string) error
}
