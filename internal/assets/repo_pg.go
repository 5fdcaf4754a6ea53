package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"photoapp-backend/internal/shared/storage/db"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert creates a new asset row and returns its assigned id. A userid
// that references no users row fails the foreign-key constraint, which is
// reported distinctly from other store failures.
func (r *PGRepo) Insert(ctx context.Context, userID int64, assetName, bucketKey string) (int64, error) {
	const query = `
INSERT INTO assets (userid, assetname, bucketkey)
VALUES ($1, $2, $3)
RETURNING assetid`
	var assetID int64
	err := r.DB.QueryRowContext(ctx, query, userID, assetName, bucketKey).Scan(&assetID)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return 0, fmt.Errorf("constraint violation: %w", err)
		}
		return 0, err
	}
	return assetID, nil
}

// FindByID returns the asset with the given id.
func (r *PGRepo) FindByID(ctx context.Context, assetID int64) (Asset, error) {
	const query = `
SELECT assetid, userid, assetname, bucketkey
FROM assets
WHERE assetid = $1
LIMIT 1`
	var asset Asset
	err := r.DB.QueryRowContext(ctx, query, assetID).Scan(
		&asset.AssetID,
		&asset.UserID,
		&asset.AssetName,
		&asset.BucketKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Asset{}, ErrUnknownAsset
		}
		return Asset{}, err
	}
	return asset, nil
}

// ListOrdered returns all assets ordered ascending by id.
func (r *PGRepo) ListOrdered(ctx context.Context) ([]Asset, error) {
	const query = `
SELECT assetid, userid, assetname, bucketkey
FROM assets
ORDER BY assetid ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Asset
	for rows.Next() {
		var asset Asset
		if err := rows.Scan(
			&asset.AssetID,
			&asset.UserID,
			&asset.AssetName,
			&asset.BucketKey,
		); err != nil {
			return nil, err
		}
		out = append(out, asset)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
