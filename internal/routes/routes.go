package routes

import (
	"anime-quotes-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Anime      *handlers.AnimeHandler
	Characters *handlers.CharacterHandler
	Quotes     *handlers.QuoteHandler
	Status     *handlers.StatusHandler
	// Upload is nil when object storage is not configured.
	Upload *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	api.Get("/", h.Status.Root)

	status := api.Group("/status")
	{
		status.Get("/", h.Status.ListStatusChecks)
		status.Post("/", h.Status.CreateStatusCheck)
	}

	anime := api.Group("/anime")
	{
		anime.Get("/", h.Anime.ListAnime)
		anime.Get("/:slug", h.Anime.GetAnime)
	}

	characters := api.Group("/characters")
	{
		characters.Get("/", h.Characters.ListCharacters)
		characters.Get("/:slug", h.Characters.GetCharacter)
	}

	// Fixed paths are registered before any parameterized quote route.
	quotes := api.Group("/quotes")
	{
		quotes.Get("/featured", h.Quotes.FeaturedQuotes)
		quotes.Get("/search", h.Quotes.SearchQuotes)
		quotes.Get("/", h.Quotes.ListQuotes)
		quotes.Post("/", h.Quotes.CreateQuote)
	}

	if h.Upload != nil {
		upload := api.Group("/upload")
		{
			upload.Get("/presign", h.Upload.GetPresignedURL)
		}
	}
}
