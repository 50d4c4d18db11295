package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"anime-quotes-backend/internal/database"
	"anime-quotes-backend/internal/models"

	"gorm.io/gorm"
)

const createBatchSize = 100

// NewPostgresRepositories builds the GORM-backed repositories on an open connection.
func NewPostgresRepositories(db *database.Database) *Repositories {
	return &Repositories{
		Driver:       "postgres",
		Anime:        NewAnimeRepository(db),
		Characters:   NewCharacterRepository(db),
		Quotes:       NewQuoteRepository(db),
		StatusChecks: NewStatusCheckRepository(db),
		healthCheck:  db.HealthCheck,
		close: func(context.Context) error {
			return db.Close()
		},
	}
}

type pgBase struct {
	db      *database.Database
	timeout time.Duration
}

func (r *pgBase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// incrementCounter and setCounter are shared by the anime and character tables.
func (r *pgBase) incrementCounter(ctx context.Context, model interface{}, collection, slug, field string, delta int64) (int64, error) {
	if err := checkCounterField(field); err != nil {
		return 0, err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Model(model).
		Where("slug = ?", slug).
		UpdateColumn(field, gorm.Expr(field+" + ?", delta))
	if res.Error != nil {
		return 0, storeErr("increment", collection, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *pgBase) setCounter(ctx context.Context, model interface{}, collection, slug, field string, value int64) error {
	if err := checkCounterField(field); err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Model(model).
		Where("slug = ?", slug).
		UpdateColumn(field, value).Error
	return storeErr("set counter", collection, err)
}

type animeRepository struct {
	pgBase
}

func NewAnimeRepository(db *database.Database) AnimeRepository {
	return &animeRepository{pgBase{db: db, timeout: db.GetQueryTimeout()}}
}

func (r *animeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Anime{}).Count(&total).Error
	return total, storeErr("count", CollectionAnime, err)
}

func (r *animeRepository) CreateMany(ctx context.Context, anime []models.Anime) error {
	if len(anime) == 0 {
		return nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).CreateInBatches(&anime, createBatchSize).Error
	return storeErr("insert", CollectionAnime, err)
}

func (r *animeRepository) FindAll(ctx context.Context, limit int) ([]models.Anime, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	anime := []models.Anime{}
	err := r.db.WithContext(ctx).Order("created_at ASC").Limit(limit).Find(&anime).Error
	if err != nil {
		return nil, storeErr("find", CollectionAnime, err)
	}
	return anime, nil
}

func (r *animeRepository) FindBySlug(ctx context.Context, slug string) (*models.Anime, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var anime models.Anime
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&anime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("find", CollectionAnime, err)
	}
	return &anime, nil
}

func (r *animeRepository) IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error) {
	return r.incrementCounter(ctx, &models.Anime{}, CollectionAnime, slug, field, delta)
}

func (r *animeRepository) SetCounter(ctx context.Context, slug, field string, value int64) error {
	return r.setCounter(ctx, &models.Anime{}, CollectionAnime, slug, field, value)
}

type characterRepository struct {
	pgBase
}

func NewCharacterRepository(db *database.Database) CharacterRepository {
	return &characterRepository{pgBase{db: db, timeout: db.GetQueryTimeout()}}
}

func (r *characterRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Character{}).Count(&total).Error
	return total, storeErr("count", CollectionCharacters, err)
}

func (r *characterRepository) CreateMany(ctx context.Context, characters []models.Character) error {
	if len(characters) == 0 {
		return nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).CreateInBatches(&characters, createBatchSize).Error
	return storeErr("insert", CollectionCharacters, err)
}

func (r *characterRepository) FindAll(ctx context.Context, filter CharacterFilter, limit int) ([]models.Character, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Character{})
	if filter.AnimeSlug != "" {
		query = query.Where("anime_slug = ?", filter.AnimeSlug)
	}

	characters := []models.Character{}
	if err := query.Order("created_at ASC").Limit(limit).Find(&characters).Error; err != nil {
		return nil, storeErr("find", CollectionCharacters, err)
	}
	return characters, nil
}

func (r *characterRepository) FindBySlug(ctx context.Context, slug string) (*models.Character, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var character models.Character
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("find", CollectionCharacters, err)
	}
	return &character, nil
}

func (r *characterRepository) IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error) {
	return r.incrementCounter(ctx, &models.Character{}, CollectionCharacters, slug, field, delta)
}

func (r *characterRepository) SetCounter(ctx context.Context, slug, field string, value int64) error {
	return r.setCounter(ctx, &models.Character{}, CollectionCharacters, slug, field, value)
}

type quoteRepository struct {
	pgBase
}

func NewQuoteRepository(db *database.Database) QuoteRepository {
	return &quoteRepository{pgBase{db: db, timeout: db.GetQueryTimeout()}}
}

func applyQuoteFilter(query *gorm.DB, filter QuoteFilter) *gorm.DB {
	if filter.AnimeSlug != "" {
		query = query.Where("anime_slug = ?", filter.AnimeSlug)
	}
	if filter.CharacterSlug != "" {
		query = query.Where("character_slug = ?", filter.CharacterSlug)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	return query
}

func (r *quoteRepository) Count(ctx context.Context, filter QuoteFilter) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := applyQuoteFilter(r.db.WithContext(ctx).Model(&models.Quote{}), filter).Count(&total).Error
	return total, storeErr("count", CollectionQuotes, err)
}

func (r *quoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return storeErr("insert", CollectionQuotes, r.db.WithContext(ctx).Create(quote).Error)
}

func (r *quoteRepository) CreateMany(ctx context.Context, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).CreateInBatches(&quotes, createBatchSize).Error
	return storeErr("insert", CollectionQuotes, err)
}

func (r *quoteRepository) FindFiltered(ctx context.Context, filter QuoteFilter, limit int) ([]models.Quote, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	quotes := []models.Quote{}
	err := applyQuoteFilter(r.db.WithContext(ctx).Model(&models.Quote{}), filter).
		Order("created_at ASC").
		Limit(limit).
		Find(&quotes).Error
	if err != nil {
		return nil, storeErr("find", CollectionQuotes, err)
	}
	return quotes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var quoteSearchColumns = []string{"text", "character", "anime", "category"}

func (r *quoteRepository) Search(ctx context.Context, text string, limit int) ([]models.Quote, error) {
	quotes := []models.Quote{}
	if text == "" {
		return quotes, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pattern := "%" + likeEscaper.Replace(text) + "%"
	args := make([]interface{}, len(quoteSearchColumns))
	for i := range args {
		args[i] = pattern
	}

	err := r.db.WithContext(ctx).Model(&models.Quote{}).
		Where(r.db.ILikeAny(quoteSearchColumns...), args...).
		Order("created_at ASC").
		Limit(limit).
		Find(&quotes).Error
	if err != nil {
		return nil, storeErr("search", CollectionQuotes, err)
	}
	return quotes, nil
}

type statusCheckRepository struct {
	pgBase
}

func NewStatusCheckRepository(db *database.Database) StatusCheckRepository {
	return &statusCheckRepository{pgBase{db: db, timeout: db.GetQueryTimeout()}}
}

func (r *statusCheckRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return storeErr("insert", CollectionStatusChecks, r.db.WithContext(ctx).Create(check).Error)
}

func (r *statusCheckRepository) FindAll(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	checks := []models.StatusCheck{}
	err := r.db.WithContext(ctx).Order("timestamp ASC").Limit(limit).Find(&checks).Error
	if err != nil {
		return nil, storeErr("find", CollectionStatusChecks, err)
	}
	return checks, nil
}
