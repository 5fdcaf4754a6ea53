package memory

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sort"
	"sync"
	"time"

	"photoapp-backend/internal/shared/storage/object"
)

type memObject struct {
	data         []byte
	contentType  string
	etag         string
	lastModified time.Time
}

// Store is an in-memory ObjectStore used for local development and tests.
// Listing follows S3 semantics: lexicographic key order with an exclusive
// StartAfter lower bound.
type Store struct {
	mu      sync.RWMutex
	objects map[string]memObject
}

// New creates an empty in-memory object store.
func New() *Store {
	return &Store{objects: make(map[string]memObject)}
}

// Put stores a copy of data at key, overwriting any previous object.
func (s *Store) Put(ctx context.Context, key string, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	sum := md5.Sum(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = memObject{
		data:         buf,
		contentType:  contentType,
		etag:         `"` + hex.EncodeToString(sum[:]) + `"`,
		lastModified: time.Now().UTC(),
	}
	return nil
}

// Get returns a copy of the object stored at key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, object.ErrNotFound
	}
	out := make([]byte, len(obj.data))
	copy(out, obj.data)
	return out, nil
}

// List returns up to maxKeys entries in key order, strictly after startAfter.
func (s *Store) List(ctx context.Context, startAfter string, maxKeys int32) ([]object.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	keys := make([]string, 0, len(s.objects))
	for key := range s.objects {
		if startAfter == "" || key > startAfter {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	if maxKeys > 0 && int(maxKeys) < len(keys) {
		keys = keys[:maxKeys]
	}

	entries := make([]object.Entry, 0, len(keys))
	for _, key := range keys {
		obj := s.objects[key]
		entries = append(entries, object.Entry{
			Key:          key,
			Size:         int64(len(obj.data)),
			LastModified: obj.lastModified,
			ETag:         obj.etag,
			StorageClass: "STANDARD",
		})
	}
	s.mu.RUnlock()

	return entries, nil
}

var _ object.ObjectStore = (*Store)(nil)
