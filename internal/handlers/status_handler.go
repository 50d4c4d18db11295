package handlers

import (
	"anime-quotes-backend/internal/services"
	"anime-quotes-backend/internal/utils"
	"anime-quotes-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StatusHandler struct {
	service services.StatusService
	logger  *logrus.Logger
}

func NewStatusHandler(service services.StatusService, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		service: service,
		logger:  logger,
	}
}

// Root godoc
// @Summary API root
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *StatusHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Anime Quotes API"})
}

// CreateStatusCheck godoc
// @Summary Record a status check
// @Tags status
// @Accept json
// @Produce json
// @Param check body StatusCheckRequest true "Status check request object"
// @Success 200 {object} models.StatusCheck "Recorded status check"
// @Failure 422 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /status [post]
func (h *StatusHandler) CreateStatusCheck(c *fiber.Ctx) error {
	var req StatusCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return handleError(c, h.logger, err, "", "Invalid request body")
	}

	check, err := h.service.CreateStatusCheck(c.Context(), req.ClientName)
	if err != nil {
		return handleError(c, h.logger, err, "", "Failed to record status check")
	}
	return c.JSON(check)
}

// ListStatusChecks godoc
// @Summary List status checks
// @Tags status
// @Produce json
// @Success 200 {array} models.StatusCheck "Recorded status checks"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /status [get]
func (h *StatusHandler) ListStatusChecks(c *fiber.Ctx) error {
	checks, err := h.service.ListStatusChecks(c.Context())
	if err != nil {
		return handleError(c, h.logger, err, "", "Failed to retrieve status checks")
	}
	return c.JSON(checks)
}
