package assets

import "context"

// Repo defines persistence operations for assets. Rows are created only
// through the upload path and are immutable afterwards; there is no update
// or delete.
type Repo interface {
	Insert(ctx context.Context, userID int64, assetName, bucketKey string) (int64, error)
	FindByID(ctx context.Context, assetID int64) (Asset, error)
	ListOrdered(ctx context.Context) ([]Asset, error)
}
