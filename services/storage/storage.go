package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3StorageService implements StorageService against an S3 bucket. Objects
// are publicly retrievable through the virtual-hosted-style bucket URL.
type S3StorageService struct {
	Client ObjectPutter
	Bucket string
	Region string
}

// NewS3StorageService creates an S3-backed StorageService from static credentials.
func NewS3StorageService(region, accessKeyID, secretAccessKey, bucket string) (*S3StorageService, error) {
	endpoint := fmt.Sprintf("s3.%s.amazonaws.com", region)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	return &S3StorageService{
		Client: client,
		Bucket: bucket,
		Region: region,
	}, nil
}

// ObjectKey derives a storage key for an upload: a random UUID carrying the
// original filename's extension. Concurrent uploads of equally named files
// never collide.
func ObjectKey(filename string) string {
	return uuid.NewString() + filepath.Ext(filename)
}

// UploadFile stores the payload and returns its public retrieval URL.
func (s *S3StorageService) UploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	key := ObjectKey(filename)

	_, err := s.Client.PutObject(ctx, s.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key), nil
}
