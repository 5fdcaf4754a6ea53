package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"photoapp-backend/internal/shared/storage/object"
	memorystore "photoapp-backend/internal/shared/storage/object/memory"
	"photoapp-backend/internal/users"
)

func newTestService(t *testing.T) (*Service, *users.MemoryRepo, *memorystore.Store) {
	t.Helper()
	userRepo := users.NewMemoryRepo()
	store := memorystore.New()
	svc := &Service{
		Repo:   NewMemoryRepo(),
		Owners: userRepo,
		Store:  store,
	}
	return svc, userRepo, store
}

func seedUser(t *testing.T, repo *users.MemoryRepo, folder string) int64 {
	t.Helper()
	userID, err := repo.Insert(context.Background(), users.User{
		Email:        "ada@example.com",
		LastName:     "Lovelace",
		FirstName:    "Ada",
		BucketFolder: folder,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return userID
}

func TestUploadRetrieveRoundTrip(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	userID := seedUser(t, userRepo, "ada-folder")

	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02, 0x03}
	encoded := base64.StdEncoding.EncodeToString(payload)

	assetID, err := svc.Upload(context.Background(), userID, "pic.jpg", encoded)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if assetID <= 0 {
		t.Fatalf("expected positive asset id, got %d", assetID)
	}

	out, err := svc.Retrieve(context.Background(), assetID)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if out.Data != encoded {
		t.Fatalf("round-trip mismatch: got %q want %q", out.Data, encoded)
	}
	if out.Asset.UserID != userID {
		t.Fatalf("expected owner %d, got %d", userID, out.Asset.UserID)
	}
	if out.Asset.AssetName != "pic.jpg" {
		t.Fatalf("expected asset name pic.jpg, got %s", out.Asset.AssetName)
	}
	if !strings.HasPrefix(out.Asset.BucketKey, "ada-folder/") {
		t.Fatalf("expected key under ada-folder/, got %s", out.Asset.BucketKey)
	}
}

func TestUploadUnknownOwnerWritesNothing(t *testing.T) {
	svc, _, store := newTestService(t)

	_, err := svc.Upload(context.Background(), 42, "pic.jpg", base64.StdEncoding.EncodeToString([]byte("x")))
	if !errors.Is(err, ErrUnknownOwner) {
		t.Fatalf("expected ErrUnknownOwner, got %v", err)
	}

	entries, err := store.List(context.Background(), "", 100)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no blobs written, found %d", len(entries))
	}
	rows, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List assets: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no asset rows, found %d", len(rows))
	}
}

func TestUploadMissingInput(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	userID := seedUser(t, userRepo, "f")

	if _, err := svc.Upload(context.Background(), userID, "", "aGk="); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput for empty name, got %v", err)
	}
	if _, err := svc.Upload(context.Background(), userID, "pic.jpg", ""); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput for empty data, got %v", err)
	}
}

func TestUploadBadBase64(t *testing.T) {
	svc, userRepo, store := newTestService(t)
	userID := seedUser(t, userRepo, "f")

	_, err := svc.Upload(context.Background(), userID, "pic.jpg", "!!!not-base64!!!")
	if err == nil {
		t.Fatalf("expected decode error")
	}

	entries, _ := store.List(context.Background(), "", 100)
	if len(entries) != 0 {
		t.Fatalf("expected no blobs written, found %d", len(entries))
	}
}

type failingPutStore struct {
	object.ObjectStore
}

func (failingPutStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	return errors.New("injected put failure")
}

func TestUploadBlobWriteFailureWritesNoRow(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	userID := seedUser(t, userRepo, "f")
	svc.Store = failingPutStore{ObjectStore: memorystore.New()}

	_, err := svc.Upload(context.Background(), userID, "pic.jpg", "aGk=")
	if err == nil || !strings.Contains(err.Error(), "write blob") {
		t.Fatalf("expected blob write failure, got %v", err)
	}

	rows, err := svc.Repo.ListOrdered(context.Background())
	if err != nil {
		t.Fatalf("ListOrdered: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no orphan metadata row, found %d", len(rows))
	}
}

type failingInsertRepo struct {
	Repo
}

func (failingInsertRepo) Insert(ctx context.Context, userID int64, assetName, bucketKey string) (int64, error) {
	return 0, errors.New("injected insert failure")
}

func TestUploadMetadataFailureLeavesOrphanBlob(t *testing.T) {
	svc, userRepo, store := newTestService(t)
	userID := seedUser(t, userRepo, "f")
	svc.Repo = failingInsertRepo{Repo: NewMemoryRepo()}

	_, err := svc.Upload(context.Background(), userID, "pic.jpg", "aGk=")

	var postWrite *PostWriteMetadataError
	if !errors.As(err, &postWrite) {
		t.Fatalf("expected PostWriteMetadataError, got %v", err)
	}
	if postWrite.Key == "" {
		t.Fatalf("expected orphan key to be reported")
	}

	// The orphan blob is the acknowledged outcome: it must persist at the
	// reported key with no referencing row.
	data, getErr := store.Get(context.Background(), postWrite.Key)
	if getErr != nil {
		t.Fatalf("expected orphan blob at %s: %v", postWrite.Key, getErr)
	}
	if string(data) != "hi" {
		t.Fatalf("unexpected orphan blob content %q", data)
	}
}

func TestRetrieveUnknownAsset(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Retrieve(context.Background(), 999)
	if !errors.Is(err, ErrUnknownAsset) {
		t.Fatalf("expected ErrUnknownAsset, got %v", err)
	}
}

type emptyGetStore struct {
	object.ObjectStore
}

func (emptyGetStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, object.ErrNotFound
}

func TestRetrieveDanglingReference(t *testing.T) {
	svc, userRepo, _ := newTestService(t)
	userID := seedUser(t, userRepo, "f")

	assetID, err := svc.Upload(context.Background(), userID, "pic.jpg", "aGk=")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	svc.Store = emptyGetStore{}

	_, err = svc.Retrieve(context.Background(), assetID)
	var dangling *DanglingReferenceError
	if !errors.As(err, &dangling) {
		t.Fatalf("expected DanglingReferenceError, got %v", err)
	}
	if dangling.Key == "" {
		t.Fatalf("expected dangling key to be reported")
	}
	if errors.Is(err, ErrUnknownAsset) {
		t.Fatalf("dangling reference must stay distinct from unknown asset")
	}
}
