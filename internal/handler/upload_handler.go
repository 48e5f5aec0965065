package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/FanSt3/naturale-api/internal/service"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// UploadHandler handles the multipart image upload endpoint.
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /api/upload.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "No file provided")
		return
	}

	url, err := h.uploadService.Store(header)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidFileType):
			utils.Error(c, 400, "Invalid file type. Only JPG, PNG and WEBP are allowed.")
		case errors.Is(err, utils.ErrFileTooLarge):
			utils.Error(c, 400, "File too large")
		default:
			utils.Error(c, 500, "Error uploading file")
		}
		return
	}

	c.JSON(200, gin.H{"url": url})
}
