package handlers

import (
	"anime-quotes-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnimeHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewAnimeHandler(service services.CatalogService, logger *logrus.Logger) *AnimeHandler {
	return &AnimeHandler{
		service: service,
		logger:  logger,
	}
}

// ListAnime godoc
// @Summary List anime
// @Description Get every anime series in the catalog
// @Tags anime
// @Produce json
// @Success 200 {array} models.Anime "List of anime"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /anime [get]
func (h *AnimeHandler) ListAnime(c *fiber.Ctx) error {
	anime, err := h.service.ListAnime(c.Context())
	if err != nil {
		return handleError(c, h.logger, err, "Anime not found", "Failed to retrieve anime")
	}
	return c.JSON(anime)
}

// GetAnime godoc
// @Summary Get anime by slug
// @Description Get a single anime series by its slug
// @Tags anime
// @Produce json
// @Param slug path string true "Anime slug"
// @Success 200 {object} models.Anime "Anime details"
// @Failure 404 {object} utils.StandardResponse "Anime not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /anime/{slug} [get]
func (h *AnimeHandler) GetAnime(c *fiber.Ctx) error {
	anime, err := h.service.GetAnime(c.Context(), c.Params("slug"))
	if err != nil {
		return handleError(c, h.logger, err, "Anime not found", "Failed to retrieve anime")
	}
	return c.JSON(anime)
}
