package controller

import (
	"net/http"

	"github.com/eyesdeal/eyesdeal-backend/internal/errors"
	"github.com/eyesdeal/eyesdeal-backend/internal/middleware"
	"github.com/eyesdeal/eyesdeal-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 << 20 // 10 MiB

var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type PresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Folder      string `json:"folder"`
}

// UploadFile accepts a multipart image and stores it, returning the public URL
// POST /upload
func (ctrl *UploadController) UploadFile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		errors.BadRequest(c, errors.ValidationRequired, "A file is required")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := ctrl.storage.ValidateContentType(contentType, allowedImageTypes); err != nil {
		log.Warn("Rejected upload content type", map[string]interface{}{
			"content_type": contentType,
		})
		errors.BadRequest(c, errors.UploadInvalidFileType, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
		return
	}

	if err := ctrl.storage.ValidateFileSize(fileHeader.Size, maxUploadSize); err != nil {
		errors.BadRequest(c, errors.UploadFileTooLarge, "File exceeds the 10 MB upload limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err, nil)
		errors.RespondWithError(c, http.StatusInternalServerError, errors.UploadFailed, "Failed to process the uploaded file")
		return
	}
	defer file.Close()

	folder := c.PostForm("folder")
	result, err := ctrl.storage.Upload(c.Request.Context(), file, fileHeader.Filename, contentType, folder)
	if err != nil {
		log.Error("Failed to upload file", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		errors.RespondWithError(c, http.StatusInternalServerError, errors.UploadFailed, "Failed to upload the file")
		return
	}

	log.Info("File uploaded", map[string]interface{}{
		"key":  result.Key,
		"size": fileHeader.Size,
	})

	errors.RespondWithData(c, http.StatusOK, result)
}

// GeneratePresignedURL lets the browser upload directly to the bucket
// POST /upload/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Filename and content type are required")
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedImageTypes); err != nil {
		errors.BadRequest(c, errors.UploadInvalidFileType, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
		return
	}

	result, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, req.Folder)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename": req.Filename,
		})
		errors.RespondWithError(c, http.StatusInternalServerError, errors.UploadFailed, "Failed to generate upload URL")
		return
	}

	errors.RespondWithData(c, http.StatusOK, result)
}
