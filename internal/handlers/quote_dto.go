package handlers

import "anime-quotes-backend/internal/models"

// QuoteRequest is the body of POST /api/quotes. id and created_at are
// assigned by the server and ignored if sent.
type QuoteRequest struct {
	Anime         string  `json:"anime" validate:"required" example:"ONE PIECE"`
	AnimeSlug     string  `json:"anime_slug" validate:"required" example:"one-piece"`
	Character     string  `json:"character" validate:"required" example:"Monkey D. Luffy"`
	CharacterSlug string  `json:"character_slug" validate:"required" example:"monkey-d-luffy"`
	Text          string  `json:"text" validate:"required" example:"I'm gonna be King of the Pirates!"`
	ImageURL      *string `json:"image_url,omitempty" example:"/images/naruto.jpg"`
	Category      *string `json:"category,omitempty" example:"determination"`
	JapaneseTitle *string `json:"japanese_title,omitempty"`
	Featured      bool    `json:"featured"`
}

type StatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required" example:"web-frontend"`
}

func (r *QuoteRequest) toModel() *models.Quote {
	return &models.Quote{
		Anime:         r.Anime,
		AnimeSlug:     r.AnimeSlug,
		Character:     r.Character,
		CharacterSlug: r.CharacterSlug,
		Text:          r.Text,
		ImageURL:      r.ImageURL,
		Category:      r.Category,
		JapaneseTitle: r.JapaneseTitle,
		Featured:      r.Featured,
	}
}
