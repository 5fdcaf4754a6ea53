package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"photoapp-backend/internal/shared/metrics"
	"photoapp-backend/internal/shared/storage/object"
	"photoapp-backend/internal/shared/telemetry"
	"photoapp-backend/internal/users"
)

// Images are stored with a fixed classification; the service does not
// sniff payloads.
const uploadContentType = "image/jpeg"

// Service coordinates the metadata store and the object store for the
// upload and retrieval paths. No cross-store transaction exists: the
// upload path writes the blob first so that any metadata row that does
// exist always has a retrievable blob.
type Service struct {
	Repo   Repo
	Owners users.Repo
	Store  object.ObjectStore
}

// Upload stores a base64-encoded payload for the given user and records
// its metadata row, returning the new asset id.
//
// Failure before the blob write leaves both stores untouched. Failure of
// the blob write leaves no metadata row. Failure of the metadata insert
// after a successful blob write leaves an orphan blob; that outcome is
// reported as a PostWriteMetadataError carrying the orphan's key rather
// than being collapsed into a generic failure.
func (s *Service) Upload(ctx context.Context, userID int64, assetName, encoded string) (int64, error) {
	start := time.Now()
	assetID, err := s.upload(ctx, userID, assetName, encoded)
	metrics.ObserveUploadDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncUploadFailed()
		return -1, err
	}
	metrics.IncUploadCompleted()
	return assetID, nil
}

func (s *Service) upload(ctx context.Context, userID int64, assetName, encoded string) (int64, error) {
	if assetName == "" || encoded == "" {
		return -1, ErrMissingInput
	}

	owner, err := s.Owners.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return -1, ErrUnknownOwner
		}
		return -1, fmt.Errorf("find user: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return -1, fmt.Errorf("decode image data: %w", err)
	}

	key := objectKey(owner.BucketFolder, assetName)

	if err := s.Store.Put(ctx, key, uploadContentType, data); err != nil {
		return -1, fmt.Errorf("write blob: %w", err)
	}

	assetID, err := s.Repo.Insert(ctx, userID, assetName, key)
	if err != nil {
		metrics.IncUploadOrphanBlob()
		telemetry.Error("upload.orphan_blob", map[string]any{
			"user_id":    userID,
			"bucket_key": key,
			"error":      err.Error(),
		})
		return -1, &PostWriteMetadataError{Key: key, Err: err}
	}

	return assetID, nil
}

// Retrieved is the result of a successful retrieval: the asset row plus
// its payload re-encoded for transport.
type Retrieved struct {
	Asset Asset
	Data  string
}

// Retrieve resolves an asset id to its metadata row, fetches the blob at
// the row's key and re-encodes it as base64. A row whose blob is missing
// yields a DanglingReferenceError, distinct from ErrUnknownAsset.
func (s *Service) Retrieve(ctx context.Context, assetID int64) (Retrieved, error) {
	start := time.Now()
	out, err := s.retrieve(ctx, assetID)
	metrics.ObserveRetrieveDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncRetrieveFailed()
		return Retrieved{}, err
	}
	metrics.IncRetrieveCompleted()
	return out, nil
}

func (s *Service) retrieve(ctx context.Context, assetID int64) (Retrieved, error) {
	asset, err := s.Repo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, ErrUnknownAsset) {
			return Retrieved{}, ErrUnknownAsset
		}
		return Retrieved{}, fmt.Errorf("find asset: %w", err)
	}

	data, err := s.Store.Get(ctx, asset.BucketKey)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			telemetry.Error("retrieve.dangling_reference", map[string]any{
				"asset_id":   assetID,
				"bucket_key": asset.BucketKey,
			})
			return Retrieved{}, &DanglingReferenceError{Key: asset.BucketKey}
		}
		return Retrieved{}, fmt.Errorf("read blob: %w", err)
	}

	return Retrieved{
		Asset: asset,
		Data:  base64.StdEncoding.EncodeToString(data),
	}, nil
}

// List returns all assets ordered ascending by id.
func (s *Service) List(ctx context.Context) ([]Asset, error) {
	return s.Repo.ListOrdered(ctx)
}
