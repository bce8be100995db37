package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Team-DAS/profile-cell/internal/storage/models"
)

// fakeStore is an in-memory ObjectStore that records every call, so tests
// can assert that validation happens before the store is touched.
type fakeStore struct {
	objects map[string]fakeObject
	calls   []string
	putErr  error
}

type fakeObject struct {
	data        []byte
	contentType string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string]fakeObject)}
}

func (f *fakeStore) Put(_ context.Context, path string, reader io.Reader, size int64, contentType string) error {
	f.calls = append(f.calls, "put "+path)
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[path] = fakeObject{data: data, contentType: contentType}
	return nil
}

func (f *fakeStore) Stat(_ context.Context, path string) (models.ObjectInfo, error) {
	f.calls = append(f.calls, "stat "+path)
	obj, ok := f.objects[path]
	if !ok {
		return models.ObjectInfo{}, models.ErrObjectNotFound
	}
	return models.ObjectInfo{ContentType: obj.contentType, Size: int64(len(obj.data))}, nil
}

func (f *fakeStore) Get(_ context.Context, path string) (io.ReadCloser, error) {
	f.calls = append(f.calls, "get "+path)
	obj, ok := f.objects[path]
	if !ok {
		return nil, models.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (f *fakeStore) Remove(_ context.Context, path string) error {
	f.calls = append(f.calls, "remove "+path)
	delete(f.objects, path)
	return nil
}

func newTestService() (*FileService, *fakeStore) {
	store := newFakeStore()
	return NewFileService(store, "profiles", "http://localhost:9000"), store
}

func TestUploadRejectsInvalidDataBeforeStore(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	tests := []struct {
		name         string
		originalName string
		size         int64
	}{
		{"empty content", "cv.pdf", 0},
		{"blank name", "   ", 12},
		{"no name", "", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, models.ProfileCVs, tt.originalName, strings.NewReader("x"), tt.size, "application/pdf")
			if !errors.Is(err, ErrInvalidData) {
				t.Errorf("expected ErrInvalidData, got %v", err)
			}
		})
	}

	if len(store.calls) != 0 {
		t.Errorf("validation failures must not reach the store, saw calls: %v", store.calls)
	}
}

func TestUploadGeneratesKeyWithOriginalName(t *testing.T) {
	svc, store := newTestService()

	descriptor, err := svc.Upload(context.Background(), models.ProfileImages, "photo.png", strings.NewReader("content"), 7, "image/png")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if !strings.HasSuffix(descriptor.Key, "_photo.png") {
		t.Errorf("key must end with the original name, got %q", descriptor.Key)
	}
	if len(descriptor.Key) <= len("_photo.png") {
		t.Errorf("key must carry a generated prefix, got %q", descriptor.Key)
	}
	if descriptor.Category != models.ProfileImages {
		t.Errorf("expected category %s, got %s", models.ProfileImages, descriptor.Category)
	}
	if descriptor.Size != 7 || descriptor.ContentType != "image/png" {
		t.Errorf("descriptor does not match upload: %+v", descriptor)
	}
	wantURL := "http://localhost:9000/profiles/profile_images/" + descriptor.Key
	if descriptor.URL != wantURL {
		t.Errorf("expected url %q, got %q", wantURL, descriptor.URL)
	}

	if _, ok := store.objects["profile_images/"+descriptor.Key]; !ok {
		t.Error("object was not stored under folder/key")
	}
}

func TestUploadKeysAreUnique(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Upload(ctx, models.ProfileCVs, "cv.pdf", strings.NewReader("a"), 1, "application/pdf")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	second, err := svc.Upload(ctx, models.ProfileCVs, "cv.pdf", strings.NewReader("a"), 1, "application/pdf")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if first.Key == second.Key {
		t.Error("identical uploads must still get distinct keys")
	}
}

func TestUploadDefaultsContentType(t *testing.T) {
	svc, _ := newTestService()

	descriptor, err := svc.Upload(context.Background(), models.ProfileCVs, "cv.bin", strings.NewReader("a"), 1, "")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if descriptor.ContentType != "application/octet-stream" {
		t.Errorf("expected octet-stream default, got %q", descriptor.ContentType)
	}
}

func TestUploadWrapsStoreErrors(t *testing.T) {
	svc, store := newTestService()
	store.putErr = errors.New("connection refused")

	_, err := svc.Upload(context.Background(), models.ProfileCVs, "cv.pdf", strings.NewReader("a"), 1, "application/pdf")
	if !errors.Is(err, ErrUploadFailed) {
		t.Errorf("expected ErrUploadFailed, got %v", err)
	}
}

func TestDownloadRoundtrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	descriptor, err := svc.Upload(ctx, models.ProfileImages, "photo.png", strings.NewReader("image-bytes"), 11, "image/png")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	content, contentType, size, err := svc.Download(ctx, models.ProfileImages, descriptor.Key)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	defer content.Close()

	data, err := io.ReadAll(content)
	if err != nil {
		t.Fatalf("reading content failed: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("downloaded content does not match upload: %q", data)
	}
	if contentType != "image/png" || size != 11 {
		t.Errorf("unexpected metadata: %s, %d", contentType, size)
	}
}

func TestDownloadMissingKey(t *testing.T) {
	svc, _ := newTestService()

	_, _, _, err := svc.Download(context.Background(), models.ProfileCVs, "nope_cv.pdf")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestDeleteRemovesObject(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	descriptor, err := svc.Upload(ctx, models.ProfileCVs, "cv.pdf", strings.NewReader("a"), 1, "application/pdf")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if err := svc.Delete(ctx, models.ProfileCVs, descriptor.Key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := store.objects["profile_cvs/"+descriptor.Key]; ok {
		t.Error("object still present after delete")
	}

	// Deleting the same key again is an error, not a no-op.
	if err := svc.Delete(ctx, models.ProfileCVs, descriptor.Key); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound on second delete, got %v", err)
	}
}

func TestCategoriesAreIsolated(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	descriptor, err := svc.Upload(ctx, models.ProfileImages, "photo.png", strings.NewReader("a"), 1, "image/png")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	// The same key under the other category resolves to a different path.
	if _, _, _, err := svc.Download(ctx, models.ProfileCVs, descriptor.Key); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound across categories, got %v", err)
	}
}
