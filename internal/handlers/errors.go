package handlers

import (
	"errors"
	"strconv"
	"strings"

	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/utils"
	"anime-quotes-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// handleError maps service errors onto HTTP responses. notFound is the
// message used for repository.ErrNotFound, failure the one used for 500s.
func handleError(c *fiber.Ctx, logger *logrus.Logger, err error, notFound, failure string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound)
	}

	var ve *validation.RequestValidationError
	if errors.As(err, &ve) {
		if len(ve.Fields) > 0 {
			return utils.ErrorWithDataResponse(c, fiber.StatusUnprocessableEntity, ve.Error(), ve.Fields)
		}
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, ve.Error())
	}

	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}
	var se *repository.StoreError
	if errors.As(err, &se) {
		fields["op"] = se.Op
		fields["collection"] = se.Collection
	}
	logger.WithError(err).WithFields(fields).Error(failure)

	return utils.ErrorResponse(c, fiber.StatusInternalServerError, failure)
}

// queryLimit returns 0 when the parameter is absent so the service default applies.
func queryLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, validation.Errorf("limit must be a positive integer")
	}
	return limit, nil
}

// queryBool returns nil when the parameter is absent.
func queryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	var value bool
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on", "t", "y":
		value = true
	case "false", "0", "no", "off", "f", "n":
		value = false
	default:
		return nil, validation.Errorf("%s must be a boolean", key)
	}
	return &value, nil
}
