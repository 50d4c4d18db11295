package handlers

import (
	"anime-quotes-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CharacterHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewCharacterHandler(service services.CatalogService, logger *logrus.Logger) *CharacterHandler {
	return &CharacterHandler{
		service: service,
		logger:  logger,
	}
}

// ListCharacters godoc
// @Summary List characters
// @Description Get characters, optionally restricted to one anime
// @Tags characters
// @Produce json
// @Param anime_slug query string false "Anime slug"
// @Success 200 {array} models.Character "List of characters"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /characters [get]
func (h *CharacterHandler) ListCharacters(c *fiber.Ctx) error {
	characters, err := h.service.ListCharacters(c.Context(), c.Query("anime_slug"))
	if err != nil {
		return handleError(c, h.logger, err, "Character not found", "Failed to retrieve characters")
	}
	return c.JSON(characters)
}

// GetCharacter godoc
// @Summary Get character by slug
// @Description Get a single character by its slug
// @Tags characters
// @Produce json
// @Param slug path string true "Character slug"
// @Success 200 {object} models.Character "Character details"
// @Failure 404 {object} utils.StandardResponse "Character not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /characters/{slug} [get]
func (h *CharacterHandler) GetCharacter(c *fiber.Ctx) error {
	character, err := h.service.GetCharacter(c.Context(), c.Params("slug"))
	if err != nil {
		return handleError(c, h.logger, err, "Character not found", "Failed to retrieve character")
	}
	return c.JSON(character)
}
