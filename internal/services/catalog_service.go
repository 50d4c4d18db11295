package services

import (
	"context"
	"fmt"
	"time"

	"anime-quotes-backend/internal/models"
	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/validation"

	"github.com/sirupsen/logrus"
)

// Result caps applied when the caller does not supply a limit.
const (
	DefaultQuoteLimit    = 100
	DefaultFeaturedLimit = 100
	DefaultSearchLimit   = 50
	CatalogListLimit     = 1000
)

type CatalogService interface {
	// Anime and characters
	ListAnime(ctx context.Context) ([]models.Anime, error)
	GetAnime(ctx context.Context, slug string) (*models.Anime, error)
	ListCharacters(ctx context.Context, animeSlug string) ([]models.Character, error)
	GetCharacter(ctx context.Context, slug string) (*models.Character, error)

	// Quotes
	ListQuotes(ctx context.Context, filter repository.QuoteFilter, limit int) ([]models.Quote, error)
	FeaturedQuotes(ctx context.Context) ([]models.Quote, error)
	SearchQuotes(ctx context.Context, text string, limit int) ([]models.Quote, error)
	CreateQuote(ctx context.Context, quote *models.Quote) error
}

type counterIncrementer interface {
	IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error)
}

type catalogService struct {
	anime      repository.AnimeRepository
	characters repository.CharacterRepository
	quotes     repository.QuoteRepository
	logger     *logrus.Logger
	now        func() time.Time
}

func NewCatalogService(repos *repository.Repositories, logger *logrus.Logger) CatalogService {
	return &catalogService{
		anime:      repos.Anime,
		characters: repos.Characters,
		quotes:     repos.Quotes,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *catalogService) ListAnime(ctx context.Context) ([]models.Anime, error) {
	return s.anime.FindAll(ctx, CatalogListLimit)
}

func (s *catalogService) GetAnime(ctx context.Context, slug string) (*models.Anime, error) {
	return s.anime.FindBySlug(ctx, slug)
}

func (s *catalogService) ListCharacters(ctx context.Context, animeSlug string) ([]models.Character, error) {
	return s.characters.FindAll(ctx, repository.CharacterFilter{AnimeSlug: animeSlug}, CatalogListLimit)
}

func (s *catalogService) GetCharacter(ctx context.Context, slug string) (*models.Character, error) {
	return s.characters.FindBySlug(ctx, slug)
}

func (s *catalogService) ListQuotes(ctx context.Context, filter repository.QuoteFilter, limit int) ([]models.Quote, error) {
	if limit <= 0 {
		limit = DefaultQuoteLimit
	}
	return s.quotes.FindFiltered(ctx, filter, limit)
}

func (s *catalogService) FeaturedQuotes(ctx context.Context) ([]models.Quote, error) {
	featured := true
	return s.quotes.FindFiltered(ctx, repository.QuoteFilter{Featured: &featured}, DefaultFeaturedLimit)
}

func (s *catalogService) SearchQuotes(ctx context.Context, text string, limit int) ([]models.Quote, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return s.quotes.Search(ctx, text, limit)
}

func (s *catalogService) CreateQuote(ctx context.Context, quote *models.Quote) error {
	if err := checkQuote(quote); err != nil {
		return err
	}

	quote.ID = ""
	quote.CreatedAt = time.Time{}
	quote.EnsureDefaults(s.now())

	if err := s.quotes.Create(ctx, quote); err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}

	// Counter upkeep is best-effort: the quote is already stored.
	s.bumpQuoteCounter(ctx, s.anime, repository.CollectionAnime, quote.AnimeSlug)
	s.bumpQuoteCounter(ctx, s.characters, repository.CollectionCharacters, quote.CharacterSlug)

	return nil
}

func (s *catalogService) bumpQuoteCounter(ctx context.Context, repo counterIncrementer, collection, slug string) {
	fields := logrus.Fields{"collection": collection, "slug": slug}

	matched, err := repo.IncrementCounter(ctx, slug, models.FieldTotalQuotes, 1)
	if err != nil {
		s.logger.WithError(err).WithFields(fields).Warn("Failed to increment quote counter")
		return
	}
	if matched == 0 {
		s.logger.WithFields(fields).Debug("Quote references a slug with no catalog record")
	}
}

func checkQuote(quote *models.Quote) error {
	switch {
	case quote.Text == "":
		return validation.Errorf("text is required")
	case quote.Anime == "":
		return validation.Errorf("anime is required")
	case quote.AnimeSlug == "":
		return validation.Errorf("anime_slug is required")
	case quote.Character == "":
		return validation.Errorf("character is required")
	case quote.CharacterSlug == "":
		return validation.Errorf("character_slug is required")
	}
	return nil
}
