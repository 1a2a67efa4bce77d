package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

// StorageService defines the interface for blob storage operations.
type StorageService interface {
	// UploadFile stores the payload under a freshly generated key derived
	// from the original filename's extension, and returns the public
	// retrieval URL of the stored object.
	UploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

// ObjectPutter is the subset of the S3 client the service depends on.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}
