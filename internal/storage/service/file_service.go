package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Team-DAS/profile-cell/internal/storage/models"
)

var (
	// ErrInvalidData means the upload was rejected before touching the
	// store: empty content or a blank original name.
	ErrInvalidData = errors.New("invalid file data")
	// ErrFileNotFound means no object exists for the requested key.
	ErrFileNotFound = errors.New("file not found")
	ErrUploadFailed = errors.New("upload failed")
	ErrDeleteFailed = errors.New("delete failed")
)

// ObjectStore is the bucket-scoped persistence contract implemented by the
// MinIO wrapper. Stat returns models.ErrObjectNotFound for missing paths.
type ObjectStore interface {
	Put(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error
	Stat(ctx context.Context, path string) (models.ObjectInfo, error)
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}

// FileService stores and retrieves profile-related files. Keys are
// server-generated and keep the original filename as a suffix so downloads
// stay recognizable.
type FileService struct {
	store          ObjectStore
	bucket         string
	publicEndpoint string
}

func NewFileService(store ObjectStore, bucket, publicEndpoint string) *FileService {
	return &FileService{
		store:          store,
		bucket:         bucket,
		publicEndpoint: strings.TrimRight(publicEndpoint, "/"),
	}
}

// Upload validates the incoming file, then streams it to the store under a
// fresh unique key. Validation failures never reach the store.
func (s *FileService) Upload(ctx context.Context, category models.Category, originalName string, reader io.Reader, size int64, contentType string) (*models.FileDescriptor, error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidData)
	}
	if strings.TrimSpace(originalName) == "" {
		return nil, fmt.Errorf("%w: file name is blank", ErrInvalidData)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := uuid.NewString() + "_" + originalName
	path := s.objectPath(category, key)

	if err := s.store.Put(ctx, path, reader, size, contentType); err != nil {
		return nil, fmt.Errorf("%w: storing %s: %v", ErrUploadFailed, path, err)
	}

	log.Printf("Uploaded %s (%d bytes, %s)", path, size, contentType)

	return &models.FileDescriptor{
		Key:         key,
		URL:         fmt.Sprintf("%s/%s/%s", s.publicEndpoint, s.bucket, path),
		ContentType: contentType,
		Size:        size,
		Category:    category,
	}, nil
}

// Download returns the object's content stream along with its content type
// and size. The caller owns the returned ReadCloser.
func (s *FileService) Download(ctx context.Context, category models.Category, key string) (io.ReadCloser, string, int64, error) {
	path := s.objectPath(category, key)

	info, err := s.store.Stat(ctx, path)
	if err != nil {
		if errors.Is(err, models.ErrObjectNotFound) {
			return nil, "", 0, fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}
		return nil, "", 0, fmt.Errorf("error stating %s: %w", path, err)
	}

	obj, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error retrieving %s: %w", path, err)
	}

	return obj, info.ContentType, info.Size, nil
}

// Delete removes the object. Deleting a missing key is an error, not a
// no-op.
func (s *FileService) Delete(ctx context.Context, category models.Category, key string) error {
	path := s.objectPath(category, key)

	if _, err := s.store.Stat(ctx, path); err != nil {
		if errors.Is(err, models.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}
		return fmt.Errorf("error stating %s: %w", path, err)
	}

	if err := s.store.Remove(ctx, path); err != nil {
		return fmt.Errorf("%w: removing %s: %v", ErrDeleteFailed, path, err)
	}

	log.Printf("Deleted %s", path)
	return nil
}

func (s *FileService) objectPath(category models.Category, key string) string {
	return category.Folder() + "/" + key
}
