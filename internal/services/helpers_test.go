package services

import (
	"context"
	"errors"
	"testing"

	"anime-quotes-backend/internal/models"
	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/seed"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("store unavailable")

func newTestLogger() (*logrus.Logger, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func loadDataset(t *testing.T) *seed.Dataset {
	t.Helper()
	ds, err := seed.Load()
	require.NoError(t, err)
	return ds
}

func seededRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos := repository.NewMemoryRepositories()
	logger, _ := newTestLogger()
	_, err := NewSeedService(repos, loadDataset(t), logger).Seed(context.Background())
	require.NoError(t, err)
	return repos
}

// failingAnime lets individual anime operations be switched to fail.
type failingAnime struct {
	repository.AnimeRepository
	failCount     bool
	failIncrement bool
}

func (f *failingAnime) Count(ctx context.Context) (int64, error) {
	if f.failCount {
		return 0, &repository.StoreError{Op: "count", Collection: repository.CollectionAnime, Err: errUnavailable}
	}
	return f.AnimeRepository.Count(ctx)
}

func (f *failingAnime) IncrementCounter(ctx context.Context, slug, field string, delta int64) (int64, error) {
	if f.failIncrement {
		return 0, &repository.StoreError{Op: "increment", Collection: repository.CollectionAnime, Err: errUnavailable}
	}
	return f.AnimeRepository.IncrementCounter(ctx, slug, field, delta)
}

type failingQuotes struct {
	repository.QuoteRepository
	failCreate     bool
	failCreateMany bool
}

func (f *failingQuotes) Create(ctx context.Context, quote *models.Quote) error {
	if f.failCreate {
		return &repository.StoreError{Op: "insert", Collection: repository.CollectionQuotes, Err: errUnavailable}
	}
	return f.QuoteRepository.Create(ctx, quote)
}

func (f *failingQuotes) CreateMany(ctx context.Context, quotes []models.Quote) error {
	if f.failCreateMany {
		return &repository.StoreError{Op: "insert", Collection: repository.CollectionQuotes, Err: errUnavailable}
	}
	return f.QuoteRepository.CreateMany(ctx, quotes)
}
