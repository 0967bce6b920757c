// Package store provides the named-blob persistence used to pass
// artifacts between actions: survey drafts, QSF documents, character
// lists, response batches and rendered reports. Keys are deterministic
// functions of topic slug and purpose; last writer wins.
package store

import (
	"context"
	"errors"
)

// ErrNotFound indicates a blob that was never written.
var ErrNotFound = errors.New("blob not found")

// BlobStore is a minimal named-blob interface. No listing or deletion
// is needed: every key is well known and overwritten in place.
type BlobStore interface {
	Write(ctx context.Context, key string, data []byte) error
	Read(ctx context.Context, key string) ([]byte, error)
}
