package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorageService struct {
	uploads      int
	lastData     []byte
	lastFilename string
	lastMIME     string
	err          error
}

func (f *fakeStorageService) UploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	f.uploads++
	f.lastData = data
	f.lastFilename = filename
	f.lastMIME = contentType
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("https://mi-bucket.s3.us-east-1.amazonaws.com/upload-%d.png", f.uploads), nil
}

func newStorageRouter(svc *fakeStorageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/upload", NewStorageHandler(svc).UploadFileHandler)
	return r
}

func multipartUpload(t *testing.T, r *gin.Engine, field, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestUpload_NoFile(t *testing.T) {
	svc := &fakeStorageService{}
	r := newStorageRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No se ha proporcionado ningún archivo.")
	assert.Zero(t, svc.uploads)
}

func TestUpload_OK(t *testing.T) {
	svc := &fakeStorageService{}
	r := newStorageRouter(svc)

	payload := []byte("png-bytes")
	rr := multipartUpload(t, r, "file", "a.png", "image/png", payload)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, svc.uploads, "the store must be called exactly once")
	assert.Equal(t, payload, svc.lastData)
	assert.Equal(t, "a.png", svc.lastFilename)
	assert.Equal(t, "image/png", svc.lastMIME)

	var resp struct {
		Message string `json:"message"`
		FileURL string `json:"fileUrl"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Archivo subido correctamente", resp.Message)
	assert.Regexp(t, `^https://mi-bucket\.s3\.us-east-1\.amazonaws\.com/`, resp.FileURL)
}

func TestUpload_WrongFieldName(t *testing.T) {
	svc := &fakeStorageService{}
	r := newStorageRouter(svc)

	rr := multipartUpload(t, r, "archivo", "a.png", "image/png", []byte("x"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, svc.uploads)
}

func TestUpload_StoreFailureHidesDetail(t *testing.T) {
	svc := &fakeStorageService{err: errors.New("s3: access denied for key AKIA123")}
	r := newStorageRouter(svc)

	rr := multipartUpload(t, r, "file", "a.png", "image/png", []byte("x"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Error al subir el archivo.")
	assert.NotContains(t, rr.Body.String(), "AKIA123", "internal error detail must not leak to the client")
}
