package handlers

import (
	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/services"
	"anime-quotes-backend/internal/utils"
	"anime-quotes-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type QuoteHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewQuoteHandler(service services.CatalogService, logger *logrus.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		logger:  logger,
	}
}

// ListQuotes godoc
// @Summary List quotes
// @Description Get quotes matching every supplied filter
// @Tags quotes
// @Produce json
// @Param anime_slug query string false "Anime slug"
// @Param character_slug query string false "Character slug"
// @Param category query string false "Category"
// @Param featured query bool false "Featured flag"
// @Param limit query int false "Maximum number of quotes" default(100)
// @Success 200 {array} models.Quote "List of quotes"
// @Failure 422 {object} utils.StandardResponse "Invalid query parameter"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *fiber.Ctx) error {
	limit, err := queryLimit(c)
	if err != nil {
		return handleError(c, h.logger, err, "", "")
	}
	featured, err := queryBool(c, "featured")
	if err != nil {
		return handleError(c, h.logger, err, "", "")
	}

	filter := repository.QuoteFilter{
		AnimeSlug:     c.Query("anime_slug"),
		CharacterSlug: c.Query("character_slug"),
		Category:      c.Query("category"),
		Featured:      featured,
	}

	quotes, err := h.service.ListQuotes(c.Context(), filter, limit)
	if err != nil {
		return handleError(c, h.logger, err, "", "Failed to retrieve quotes")
	}
	return c.JSON(quotes)
}

// FeaturedQuotes godoc
// @Summary List featured quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} models.Quote "Featured quotes"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /quotes/featured [get]
func (h *QuoteHandler) FeaturedQuotes(c *fiber.Ctx) error {
	quotes, err := h.service.FeaturedQuotes(c.Context())
	if err != nil {
		return handleError(c, h.logger, err, "", "Failed to retrieve featured quotes")
	}
	return c.JSON(quotes)
}

// SearchQuotes godoc
// @Summary Search quotes
// @Description Case-insensitive substring search over quote text, character, anime and category
// @Tags quotes
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum number of quotes" default(50)
// @Success 200 {array} models.Quote "Matching quotes"
// @Failure 422 {object} utils.StandardResponse "Missing or invalid query parameter"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /quotes/search [get]
func (h *QuoteHandler) SearchQuotes(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("q") {
		return handleError(c, h.logger, validation.Errorf("q is required"), "", "")
	}
	limit, err := queryLimit(c)
	if err != nil {
		return handleError(c, h.logger, err, "", "")
	}

	quotes, err := h.service.SearchQuotes(c.Context(), c.Query("q"), limit)
	if err != nil {
		return handleError(c, h.logger, err, "", "Failed to search quotes")
	}
	return c.JSON(quotes)
}

// CreateQuote godoc
// @Summary Create a quote
// @Description Store a new quote and bump the quote counters of its anime and character
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body QuoteRequest true "Quote request object"
// @Success 200 {object} models.Quote "Created quote"
// @Failure 422 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return handleError(c, h.logger, err, "", "Invalid request body")
	}

	quote := req.toModel()
	if err := h.service.CreateQuote(c.Context(), quote); err != nil {
		return handleError(c, h.logger, err, "", "Failed to create quote")
	}
	return c.JSON(quote)
}
