package minio

import (
	"context"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Team-DAS/profile-cell/internal/storage/config"
	"github.com/Team-DAS/profile-cell/internal/storage/models"
)

// Store wraps the MinIO client for a single bucket. It maps the driver's
// NoSuchKey responses to models.ErrObjectNotFound so callers never see
// driver error types.
type Store struct {
	client *minio.Client
	bucket string
}

// NewStore initializes the MinIO client and creates the bucket if it does
// not exist yet.
func NewStore(cfg *config.MinIOConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		log.Printf("Error initializing MinIO client: %v", err)
		return nil, err
	}

	exists, err := client.BucketExists(context.Background(), cfg.Bucket)
	if err != nil {
		log.Printf("Error checking if bucket %s exists: %v", cfg.Bucket, err)
		return nil, err
	}
	if !exists {
		err = client.MakeBucket(context.Background(), cfg.Bucket, minio.MakeBucketOptions{
			Region: cfg.Region,
		})
		if err != nil {
			log.Printf("Error creating bucket %s: %v", cfg.Bucket, err)
			return nil, err
		}
		log.Printf("Created bucket: %s", cfg.Bucket)
	}

	log.Println("Successfully initialized MinIO client")
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *Store) Put(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("Error uploading object %s: %v", path, err)
		return err
	}
	return nil
}

func (s *Store) Stat(ctx context.Context, path string) (models.ObjectInfo, error) {
	stat, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return models.ObjectInfo{}, models.ErrObjectNotFound
		}
		log.Printf("Error stating object %s: %v", path, err)
		return models.ObjectInfo{}, err
	}

	return models.ObjectInfo{
		ContentType: stat.ContentType,
		Size:        stat.Size,
	}, nil
}

func (s *Store) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, s.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		log.Printf("Error getting object %s: %v", path, err)
		return nil, err
	}
	return object, nil
}

func (s *Store) Remove(ctx context.Context, path string) error {
	err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		log.Printf("Error removing object %s: %v", path, err)
		return err
	}
	return nil
}
