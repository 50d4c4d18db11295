package handlers

import (
	"anime-quotes-backend/internal/services"
	"anime-quotes-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	uploader services.ImageUploader
	logger   *logrus.Logger
}

func NewUploadHandler(uploader services.ImageUploader, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		logger:   logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for image upload
// @Description Generate a presigned URL for uploading a quote, character or anime image to MinIO/S3
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Param kind query string false "Image kind (quote, character, anime)" default(quote)
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	kind := c.Query("kind", services.ImageKindQuote)
	if _, err := services.ObjectPath(kind, filename); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	presignedURL, publicURL, err := h.uploader.GeneratePresignedURL(c.Context(), kind, filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return c.JSON(fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
