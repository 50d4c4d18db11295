package repository

import (
	"context"
	"strings"
	"sync"

	"anime-quotes-backend/internal/models"
)

// NewMemoryRepositories returns repositories over process-local slices.
// Records keep insertion order. Data is lost when the process exits.
func NewMemoryRepositories() *Repositories {
	store := &memoryStore{}
	return &Repositories{
		Driver:       "memory",
		Anime:        &memoryAnimeRepository{store},
		Characters:   &memoryCharacterRepository{store},
		Quotes:       &memoryQuoteRepository{store},
		StatusChecks: &memoryStatusCheckRepository{store},
	}
}

type memoryStore struct {
	mu           sync.RWMutex
	anime        []models.Anime
	characters   []models.Character
	quotes       []models.Quote
	statusChecks []models.StatusCheck
}

func capLimit(n, limit int) int {
	if limit > 0 && limit < n {
		return limit
	}
	return n
}

func matchesQuote(q *models.Quote, filter QuoteFilter) bool {
	if filter.AnimeSlug != "" && q.AnimeSlug != filter.AnimeSlug {
		return false
	}
	if filter.CharacterSlug != "" && q.CharacterSlug != filter.CharacterSlug {
		return false
	}
	if filter.Category != "" && (q.Category == nil || *q.Category != filter.Category) {
		return false
	}
	if filter.Featured != nil && q.Featured != *filter.Featured {
		return false
	}
	return true
}

func containsFold(value, lowered string) bool {
	return strings.Contains(strings.ToLower(value), lowered)
}

type memoryAnimeRepository struct {
	s *memoryStore
}

func (r *memoryAnimeRepository) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.anime)), storeErr("count", CollectionAnime, ctx.Err())
}

func (r *memoryAnimeRepository) CreateMany(ctx context.Context, anime []models.Anime) error {
	if err := ctx.Err(); err != nil {
		return storeErr("insert", CollectionAnime, err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.anime = append(r.s.anime, anime...)
	return nil
}

func (r *memoryAnimeRepository) FindAll(ctx context.Context, limit int) ([]models.Anime, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Anime, capLimit(len(r.s.anime), limit))
	copy(out, r.s.anime)
	return out, nil
}

func (r *memoryAnimeRepository) FindBySlug(ctx context.Context, slug string) (*models.Anime, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.anime {
		if r.s.anime[i].Slug == slug {
			anime := r.s.anime[i]
			return &anime, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryAnimeRepository) IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error) {
	if err := checkCounterField(field); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched int64
	for i := range r.s.anime {
		if r.s.anime[i].Slug == slug {
			r.s.anime[i].TotalQuotes += delta
			matched++
		}
	}
	return matched, nil
}

func (r *memoryAnimeRepository) SetCounter(ctx context.Context, slug, field string, value int64) error {
	if err := checkCounterField(field); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.anime {
		if r.s.anime[i].Slug == slug {
			r.s.anime[i].TotalQuotes = value
		}
	}
	return nil
}

type memoryCharacterRepository struct {
	s *memoryStore
}

func (r *memoryCharacterRepository) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.characters)), storeErr("count", CollectionCharacters, ctx.Err())
}

func (r *memoryCharacterRepository) CreateMany(ctx context.Context, characters []models.Character) error {
	if err := ctx.Err(); err != nil {
		return storeErr("insert", CollectionCharacters, err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.characters = append(r.s.characters, characters...)
	return nil
}

func (r *memoryCharacterRepository) FindAll(ctx context.Context, filter CharacterFilter, limit int) ([]models.Character, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Character{}
	for _, c := range r.s.characters {
		if filter.AnimeSlug != "" && c.AnimeSlug != filter.AnimeSlug {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memoryCharacterRepository) FindBySlug(ctx context.Context, slug string) (*models.Character, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.characters {
		if r.s.characters[i].Slug == slug {
			character := r.s.characters[i]
			return &character, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCharacterRepository) IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error) {
	if err := checkCounterField(field); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched int64
	for i := range r.s.characters {
		if r.s.characters[i].Slug == slug {
			r.s.characters[i].TotalQuotes += delta
			matched++
		}
	}
	return matched, nil
}

func (r *memoryCharacterRepository) SetCounter(ctx context.Context, slug, field string, value int64) error {
	if err := checkCounterField(field); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.characters {
		if r.s.characters[i].Slug == slug {
			r.s.characters[i].TotalQuotes = value
		}
	}
	return nil
}

type memoryQuoteRepository struct {
	s *memoryStore
}

func (r *memoryQuoteRepository) Count(ctx context.Context, filter QuoteFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var total int64
	for i := range r.s.quotes {
		if matchesQuote(&r.s.quotes[i], filter) {
			total++
		}
	}
	return total, storeErr("count", CollectionQuotes, ctx.Err())
}

func (r *memoryQuoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	if err := ctx.Err(); err != nil {
		return storeErr("insert", CollectionQuotes, err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotes = append(r.s.quotes, *quote)
	return nil
}

func (r *memoryQuoteRepository) CreateMany(ctx context.Context, quotes []models.Quote) error {
	if err := ctx.Err(); err != nil {
		return storeErr("insert", CollectionQuotes, err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotes = append(r.s.quotes, quotes...)
	return nil
}

func (r *memoryQuoteRepository) FindFiltered(ctx context.Context, filter QuoteFilter, limit int) ([]models.Quote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Quote{}
	for i := range r.s.quotes {
		if !matchesQuote(&r.s.quotes[i], filter) {
			continue
		}
		out = append(out, r.s.quotes[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memoryQuoteRepository) Search(ctx context.Context, text string, limit int) ([]models.Quote, error) {
	out := []models.Quote{}
	if text == "" {
		return out, nil
	}
	lowered := strings.ToLower(text)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, q := range r.s.quotes {
		category := ""
		if q.Category != nil {
			category = *q.Category
		}
		if containsFold(q.Text, lowered) || containsFold(q.Character, lowered) ||
			containsFold(q.Anime, lowered) || containsFold(category, lowered) {
			out = append(out, q)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type memoryStatusCheckRepository struct {
	s *memoryStore
}

func (r *memoryStatusCheckRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.statusChecks = append(r.s.statusChecks, *check)
	return nil
}

func (r *memoryStatusCheckRepository) FindAll(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.StatusCheck, capLimit(len(r.s.statusChecks), limit))
	copy(out, r.s.statusChecks)
	return out, nil
}
