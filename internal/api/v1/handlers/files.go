package handlers

import (
	"github.com/gin-gonic/gin"

	"convai/internal/api/middleware"
	"convai/internal/api/v1/services"
)

// FileHandler serves stored files back by exact name
type FileHandler struct {
	files services.FileService
}

// NewFileHandler creates a new file handler
func NewFileHandler(files services.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// Upload handles GET /upload/:filename and GET /text/:filename
func (h *FileHandler) Upload(c *gin.Context) {
	path, err := h.files.UploadPath(c.Param("filename"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.File(path)
}

// Audio handles GET /tts/:filename and GET /audio/:filename
func (h *FileHandler) Audio(c *gin.Context) {
	path, err := h.files.AudioPath(c.Param("filename"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.Header("Content-Type", "audio/mpeg")
	c.File(path)
}
