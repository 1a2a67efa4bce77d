package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	puts        int
	lastBucket  string
	lastKey     string
	lastSize    int64
	lastPayload []byte
	lastMIME    string
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.puts++
	f.lastBucket = bucketName
	f.lastKey = objectName
	f.lastSize = objectSize
	f.lastMIME = opts.ContentType
	payload, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.lastPayload = payload
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func newTestService(putter *fakePutter) *S3StorageService {
	return &S3StorageService{
		Client: putter,
		Bucket: "mi-bucket",
		Region: "us-east-1",
	}
}

func TestUploadFile_PutsOnceAndReturnsURL(t *testing.T) {
	putter := &fakePutter{}
	svc := newTestService(putter)

	payload := []byte("png-bytes")
	url, err := svc.UploadFile(context.Background(), payload, "a.png", "image/png")
	require.NoError(t, err)

	require.Equal(t, 1, putter.puts)
	assert.Equal(t, "mi-bucket", putter.lastBucket)
	assert.Equal(t, payload, putter.lastPayload)
	assert.Equal(t, int64(len(payload)), putter.lastSize)
	assert.Equal(t, "image/png", putter.lastMIME)

	assert.True(t, strings.HasSuffix(putter.lastKey, ".png"))
	assert.Equal(t, "https://mi-bucket.s3.us-east-1.amazonaws.com/"+putter.lastKey, url)
}

func TestUploadFile_KeysNeverCollide(t *testing.T) {
	putter := &fakePutter{}
	svc := newTestService(putter)

	// Two back-to-back uploads of the same filename land within the same
	// wall-clock tick; the keys must still differ.
	_, err := svc.UploadFile(context.Background(), []byte("a"), "a.png", "image/png")
	require.NoError(t, err)
	firstKey := putter.lastKey

	_, err = svc.UploadFile(context.Background(), []byte("b"), "a.png", "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, firstKey, putter.lastKey)
}

func TestUploadFile_NoExtension(t *testing.T) {
	putter := &fakePutter{}
	svc := newTestService(putter)

	_, err := svc.UploadFile(context.Background(), []byte("x"), "README", "application/octet-stream")
	require.NoError(t, err)
	assert.NotContains(t, putter.lastKey, ".")
}

func TestUploadFile_PutError(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	svc := newTestService(putter)

	url, err := svc.UploadFile(context.Background(), []byte("x"), "a.png", "image/png")
	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestObjectKey_KeepsExtension(t *testing.T) {
	key := ObjectKey("informe final.PDF")
	assert.True(t, strings.HasSuffix(key, ".PDF"))
}
