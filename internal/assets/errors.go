package assets

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOwner means the upload named a user id with no users row.
	ErrUnknownOwner = errors.New("no such user...")
	// ErrUnknownAsset means the retrieval named an asset id with no assets row.
	ErrUnknownAsset = errors.New("no such asset...")
	// ErrMissingInput means the upload body lacked the asset name or payload.
	ErrMissingInput = errors.New("missing required image data")
)

// DanglingReferenceError means an assets row exists but the blob it
// references is gone from the object store. It is kept distinct from
// ErrUnknownAsset because it signals store inconsistency, not a bad
// caller-supplied id.
type DanglingReferenceError struct {
	Key string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: no object at key %q", e.Key)
}

// PostWriteMetadataError means the blob was written but the metadata
// insert failed, leaving an orphan blob at Key with no referencing row.
// The key is carried so a reconciliation process can find the orphan;
// no automatic cleanup is attempted.
type PostWriteMetadataError struct {
	Key string
	Err error
}

func (e *PostWriteMetadataError) Error() string {
	return fmt.Sprintf("metadata insert failed after blob write, orphan blob at key %q: %v", e.Key, e.Err)
}

func (e *PostWriteMetadataError) Unwrap() error { return e.Err }
