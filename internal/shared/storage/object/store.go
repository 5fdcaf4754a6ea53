package object

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no object exists at the given key.
var ErrNotFound = errors.New("object not found")

// Entry describes one stored object in a listing.
type Entry struct {
	Key          string
	Size         int64
	LastModified time.Time
	ETag         string
	StorageClass string
}

// ObjectStore defines the contract for saving, retrieving and listing
// binary objects by key.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	// List returns up to maxKeys entries in lexicographic key order,
	// strictly after startAfter when it is non-empty.
	List(ctx context.Context, startAfter string, maxKeys int32) ([]Entry, error)
}
