package handlers

import (
	"io"
	"net/http"

	"uniportal/services/storage"
	"uniportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles the file upload endpoint.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadFileHandler handles POST /api/upload. The whole attachment is
// buffered in memory before the store call, so practical upload size is
// bounded by available memory. Store failures are logged with their cause
// but the client only sees the static message.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se ha proporcionado ningún archivo."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al subir el archivo."})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al subir el archivo."})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	fileURL, err := h.StorageSvc.UploadFile(c.Request.Context(), data, fileHeader.Filename, contentType)
	if err != nil {
		logger.Error("Failed to upload file to storage", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al subir el archivo."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Archivo subido correctamente",
		"fileUrl": fileURL,
	})
}
