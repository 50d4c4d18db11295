package repository

import (
	"context"
	"errors"
	"fmt"

	"anime-quotes-backend/internal/models"
)

// ErrNotFound is returned by slug lookups that match no record.
var ErrNotFound = errors.New("record not found")

// StoreError reports a failed operation against the backing store.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Collection: collection, Err: err}
}

const (
	CollectionAnime        = "anime"
	CollectionCharacters   = "characters"
	CollectionQuotes       = "quotes"
	CollectionStatusChecks = "status_checks"
)

// QuoteFilter is a conjunction of equality predicates. Zero-valued fields are ignored.
type QuoteFilter struct {
	AnimeSlug     string
	CharacterSlug string
	Category      string
	Featured      *bool
}

type CharacterFilter struct {
	AnimeSlug string
}

type AnimeRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, anime []models.Anime) error
	FindAll(ctx context.Context, limit int) ([]models.Anime, error)
	FindBySlug(ctx context.Context, slug string) (*models.Anime, error)

	// Counter operations. IncrementCounter reports how many records matched.
	IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error)
	SetCounter(ctx context.Context, slug, field string, value int64) error
}

type CharacterRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, characters []models.Character) error
	FindAll(ctx context.Context, filter CharacterFilter, limit int) ([]models.Character, error)
	FindBySlug(ctx context.Context, slug string) (*models.Character, error)

	IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error)
	SetCounter(ctx context.Context, slug, field string, value int64) error
}

type QuoteRepository interface {
	Count(ctx context.Context, filter QuoteFilter) (int64, error)
	Create(ctx context.Context, quote *models.Quote) error
	CreateMany(ctx context.Context, quotes []models.Quote) error
	FindFiltered(ctx context.Context, filter QuoteFilter, limit int) ([]models.Quote, error)
	Search(ctx context.Context, text string, limit int) ([]models.Quote, error)
}

type StatusCheckRepository interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	FindAll(ctx context.Context, limit int) ([]models.StatusCheck, error)
}

// Repositories bundles one backend's repositories together with its lifecycle hooks.
type Repositories struct {
	Driver       string
	Anime        AnimeRepository
	Characters   CharacterRepository
	Quotes       QuoteRepository
	StatusChecks StatusCheckRepository

	healthCheck func(ctx context.Context) error
	close       func(ctx context.Context) error
}

func (r *Repositories) HealthCheck(ctx context.Context) error {
	if r.healthCheck == nil {
		return nil
	}
	return r.healthCheck(ctx)
}

func (r *Repositories) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}

var counterFields = map[string]bool{
	models.FieldTotalQuotes: true,
}

func checkCounterField(field string) error {
	if !counterFields[field] {
		return fmt.Errorf("unsupported counter field %q", field)
	}
	return nil
}
