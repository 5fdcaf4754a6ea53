package bucket

import (
	"context"
	"fmt"

	"photoapp-backend/internal/shared/storage/object"
)

// PageSize is the fixed number of entries per listing page.
const PageSize = 12

// Page is one window of the bucket listing. NextCursor is the key of the
// last entry, or empty when this was the final page; feeding it back as
// the next call's afterKey resumes the listing with no overlap and no gap.
type Page struct {
	Entries    []object.Entry
	NextCursor string
}

// Service exposes a stable cursor-based view over the object store's
// native lexicographic key listing. The store's own key order is the only
// ordering primitive available, so the last-seen key itself is the cursor.
type Service struct {
	Store object.ObjectStore
}

// NewService constructs a Service.
func NewService(store object.ObjectStore) *Service {
	return &Service{Store: store}
}

// ListPage returns up to PageSize entries strictly after afterKey.
func (s *Service) ListPage(ctx context.Context, afterKey string) (Page, error) {
	entries, err := s.Store.List(ctx, afterKey, PageSize)
	if err != nil {
		return Page{}, fmt.Errorf("list bucket: %w", err)
	}

	page := Page{Entries: entries}
	if len(entries) == PageSize {
		page.NextCursor = entries[len(entries)-1].Key
	}
	return page, nil
}
