package assets

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[int64]Asset
	nextID int64
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[int64]Asset),
		nextID: 1,
	}
}

// Insert assigns the next id, enforcing bucketkey uniqueness the way the
// relational schema does.
func (r *MemoryRepo) Insert(ctx context.Context, userID int64, assetName, bucketKey string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.BucketKey == bucketKey {
			return 0, fmt.Errorf("duplicate bucketkey %q", bucketKey)
		}
	}
	asset := Asset{
		AssetID:   r.nextID,
		UserID:    userID,
		AssetName: assetName,
		BucketKey: bucketKey,
	}
	r.nextID++
	r.byID[asset.AssetID] = asset
	return asset.AssetID, nil
}

// FindByID returns the asset with the given id.
func (r *MemoryRepo) FindByID(ctx context.Context, assetID int64) (Asset, error) {
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	asset, ok := r.byID[assetID]
	if !ok {
		return Asset{}, ErrUnknownAsset
	}
	return asset, nil
}

// ListOrdered returns all assets ordered ascending by id.
func (r *MemoryRepo) ListOrdered(ctx context.Context) ([]Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Asset, 0, len(r.byID))
	for _, asset := range r.byID {
		out = append(out, asset)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetID < out[j].AssetID })
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
