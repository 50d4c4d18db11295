package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"anime-quotes-backend/internal/models"
	"anime-quotes-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeOpener returns empty repositories that no other test shares.
type storeOpener func(t *testing.T) *repository.Repositories

var createdAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func strPtr(s string) *string { return &s }

// at spaces fixture records one second apart so created_at order is insertion order.
func at(i int) time.Time {
	return createdAt.Add(time.Duration(i) * time.Second)
}

func fixtureQuotes() []models.Quote {
	quotes := []models.Quote{
		{Anime: "ONE PIECE", AnimeSlug: "one-piece", Character: "Monkey D. Luffy", CharacterSlug: "monkey-d-luffy",
			Text: "I don't want to conquer anything.", Category: strPtr("freedom"), Featured: true},
		{Anime: "ONE PIECE", AnimeSlug: "one-piece", Character: "Roronoa Zoro", CharacterSlug: "roronoa-zoro",
			Text: "Nothing happened.", Category: strPtr("battle")},
		{Anime: "NARUTO", AnimeSlug: "naruto", Character: "Itachi Uchiha", CharacterSlug: "itachi-uchiha",
			Text: "Those who forgive themselves... are truly strong.", Category: strPtr("wisdom"), Featured: true},
		{Anime: "NARUTO", AnimeSlug: "naruto", Character: "Kakashi Hatake", CharacterSlug: "kakashi-hatake",
			Text: "Those who abandon their friends are worse than scum. 100% true"},
	}
	for i := range quotes {
		quotes[i].EnsureDefaults(at(i))
	}
	return quotes
}

func openFixture(t *testing.T, open storeOpener) *repository.Repositories {
	t.Helper()
	ctx := context.Background()
	repos := open(t)

	anime := []models.Anime{
		{Name: "ONE PIECE", Slug: "one-piece"},
		{Name: "NARUTO", Slug: "naruto"},
	}
	for i := range anime {
		anime[i].EnsureDefaults(at(i))
	}
	require.NoError(t, repos.Anime.CreateMany(ctx, anime))

	characters := []models.Character{
		{Name: "Monkey D. Luffy", Slug: "monkey-d-luffy", Anime: "ONE PIECE", AnimeSlug: "one-piece"},
		{Name: "Itachi Uchiha", Slug: "itachi-uchiha", Anime: "NARUTO", AnimeSlug: "naruto"},
	}
	for i := range characters {
		characters[i].EnsureDefaults(at(i))
	}
	require.NoError(t, repos.Characters.CreateMany(ctx, characters))
	require.NoError(t, repos.Quotes.CreateMany(ctx, fixtureQuotes()))
	return repos
}

// runStoreSuite checks the behavior every backend must share.
// uniqueSlugs is set for backends that enforce slug uniqueness with an index.
func runStoreSuite(t *testing.T, open storeOpener, uniqueSlugs bool) {
	t.Run("FindBySlug", func(t *testing.T) { testFindBySlug(t, open) })
	t.Run("FindAll", func(t *testing.T) { testFindAll(t, open) })
	t.Run("QuoteFilters", func(t *testing.T) { testQuoteFilters(t, open) })
	t.Run("Search", func(t *testing.T) { testSearch(t, open) })
	t.Run("Counters", func(t *testing.T) { testCounters(t, open) })
	t.Run("ConcurrentIncrements", func(t *testing.T) { testConcurrentIncrements(t, open) })
	t.Run("CreateQuote", func(t *testing.T) { testCreateQuote(t, open) })
	t.Run("EmptyBatches", func(t *testing.T) { testEmptyBatches(t, open) })
	t.Run("StatusChecks", func(t *testing.T) { testStatusChecks(t, open) })
	if uniqueSlugs {
		t.Run("UniqueSlugs", func(t *testing.T) { testUniqueSlugs(t, open) })
	}
}

func testFindBySlug(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := openFixture(t, open)

	anime, err := repos.Anime.FindBySlug(ctx, "naruto")
	require.NoError(t, err)
	assert.Equal(t, "NARUTO", anime.Name)
	assert.NotEmpty(t, anime.ID)
	assert.True(t, at(1).Equal(anime.CreatedAt), anime.CreatedAt)

	_, err = repos.Anime.FindBySlug(ctx, "bleach")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	character, err := repos.Characters.FindBySlug(ctx, "itachi-uchiha")
	require.NoError(t, err)
	assert.Equal(t, "naruto", character.AnimeSlug)

	_, err = repos.Characters.FindBySlug(ctx, "ichigo-kurosaki")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testFindAll(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := openFixture(t, open)

	anime, err := repos.Anime.FindAll(ctx, 10)
	require.NoError(t, err)
	require.Len(t, anime, 2)
	assert.Equal(t, "one-piece", anime[0].Slug)
	assert.Equal(t, "naruto", anime[1].Slug)

	limited, err := repos.Anime.FindAll(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	characters, err := repos.Characters.FindAll(ctx, repository.CharacterFilter{AnimeSlug: "naruto"}, 10)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "itachi-uchiha", characters[0].Slug)

	none, err := repos.Characters.FindAll(ctx, repository.CharacterFilter{AnimeSlug: "bleach"}, 10)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func testQuoteFilters(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := openFixture(t, open)
	featured := true

	tests := []struct {
		name   string
		filter repository.QuoteFilter
		limit  int
		want   []string
	}{
		{name: "empty filter", filter: repository.QuoteFilter{}, limit: 100, want: []string{"monkey-d-luffy", "roronoa-zoro", "itachi-uchiha", "kakashi-hatake"}},
		{name: "anime", filter: repository.QuoteFilter{AnimeSlug: "naruto"}, limit: 100, want: []string{"itachi-uchiha", "kakashi-hatake"}},
		{name: "anime and featured", filter: repository.QuoteFilter{AnimeSlug: "naruto", Featured: &featured}, limit: 100, want: []string{"itachi-uchiha"}},
		{name: "category is exact", filter: repository.QuoteFilter{Category: "Wisdom"}, limit: 100, want: []string{}},
		{name: "category without value never matches", filter: repository.QuoteFilter{Category: "wisdom", CharacterSlug: "kakashi-hatake"}, limit: 100, want: []string{}},
		{name: "limit", filter: repository.QuoteFilter{}, limit: 1, want: []string{"monkey-d-luffy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, err := repos.Quotes.FindFiltered(ctx, tt.filter, tt.limit)
			require.NoError(t, err)

			got := []string{}
			for _, q := range quotes {
				got = append(got, q.CharacterSlug)
			}
			assert.Equal(t, tt.want, got)

			if tt.limit == 100 {
				total, err := repos.Quotes.Count(ctx, tt.filter)
				require.NoError(t, err)
				assert.Equal(t, int64(len(tt.want)), total)
			}
		})
	}
}

func testSearch(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := openFixture(t, open)

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "text", text: "those who", want: 2},
		{name: "case-insensitive character", text: "LUFFY", want: 1},
		{name: "anime", text: "one piece", want: 2},
		{name: "category", text: "Battle", want: 1},
		{name: "percent is literal", text: "100%", want: 1},
		{name: "underscore is literal", text: "g_h", want: 0},
		{name: "regex metacharacters are literal", text: "...", want: 1},
		{name: "no match", text: "xyz123-nonexistent", want: 0},
		{name: "empty text", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, err := repos.Quotes.Search(ctx, tt.text, 50)
			require.NoError(t, err)
			assert.NotNil(t, quotes)
			assert.Len(t, quotes, tt.want)
		})
	}

	upper, err := repos.Quotes.Search(ctx, "FREEDOM", 50)
	require.NoError(t, err)
	lower, err := repos.Quotes.Search(ctx, "freedom", 50)
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.Equal(t, lower[0].ID, upper[0].ID)

	limited, err := repos.Quotes.Search(ctx, "o", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func testCounters(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := openFixture(t, open)

	matched, err := repos.Anime.IncrementCounter(ctx, "naruto", models.FieldTotalQuotes, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	matched, err = repos.Anime.IncrementCounter(ctx, "bleach", models.FieldTotalQuotes, 1)
	require.NoError(t, err)
	assert.Zero(t, matched)

	require.NoError(t, repos.Characters.SetCounter(ctx, "itachi-uchiha", models.FieldTotalQuotes, 5))
	matched, err = repos.Characters.IncrementCounter(ctx, "itachi-uchiha", models.FieldTotalQuotes, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	matched, err = repos.Characters.IncrementCounter(ctx, "ichigo-kurosaki", models.FieldTotalQuotes, 1)
	require.NoError(t, err)
	assert.Zero(t, matched)

	naruto, err := repos.Anime.FindBySlug(ctx, "naruto")
	require.NoError(t, err)
	assert.Equal(t, int64(1), naruto.TotalQuotes)

	onePiece, err := repos.Anime.FindBySlug(ctx, "one-piece")
	require.NoError(t, err)
	assert.Zero(t, onePiece.TotalQuotes)

	itachi, err := repos.Characters.FindBySlug(ctx, "itachi-uchiha")
	require.NoError(t, err)
	assert.Equal(t, int64(7), itachi.TotalQuotes)

	_, err = repos.Anime.IncrementCounter(ctx, "naruto", "name", 1)
	assert.Error(t, err)
	assert.Error(t, repos.Characters.SetCounter(ctx, "itachi-uchiha", "slug", 1))

	naruto, err = repos.Anime.FindBySlug(ctx, "naruto")
	require.NoError(t, err)
	assert.Equal(t, "NARUTO", naruto.Name)
}

func testConcurrentIncrements(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := openFixture(t, open)
	const writers = 50

	errs := make(chan error, 2*writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := repos.Anime.IncrementCounter(ctx, "naruto", models.FieldTotalQuotes, 1)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := repos.Characters.IncrementCounter(ctx, "itachi-uchiha", models.FieldTotalQuotes, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	naruto, err := repos.Anime.FindBySlug(ctx, "naruto")
	require.NoError(t, err)
	assert.Equal(t, int64(writers), naruto.TotalQuotes)

	itachi, err := repos.Characters.FindBySlug(ctx, "itachi-uchiha")
	require.NoError(t, err)
	assert.Equal(t, int64(writers), itachi.TotalQuotes)
}

func testCreateQuote(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := openFixture(t, open)

	quote := &models.Quote{
		Anime: "NARUTO", AnimeSlug: "naruto", Character: "Itachi Uchiha", CharacterSlug: "itachi-uchiha",
		Text: "You are weak. Why are you weak?", ImageURL: strPtr("/images/itachi.jpg"),
	}
	quote.EnsureDefaults(at(10))
	require.NoError(t, repos.Quotes.Create(ctx, quote))

	quotes, err := repos.Quotes.FindFiltered(ctx, repository.QuoteFilter{CharacterSlug: "itachi-uchiha"}, 100)
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	last := quotes[1]
	assert.Equal(t, quote.ID, last.ID)
	require.NotNil(t, last.ImageURL)
	assert.Equal(t, "/images/itachi.jpg", *last.ImageURL)
	assert.Nil(t, last.Category)
	assert.False(t, last.Featured)
}

func testEmptyBatches(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := open(t)

	require.NoError(t, repos.Anime.CreateMany(ctx, nil))
	require.NoError(t, repos.Characters.CreateMany(ctx, []models.Character{}))
	require.NoError(t, repos.Quotes.CreateMany(ctx, nil))

	total, err := repos.Anime.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	quotes, err := repos.Quotes.FindFiltered(ctx, repository.QuoteFilter{}, 100)
	require.NoError(t, err)
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
}

func testStatusChecks(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := open(t)

	for i, name := range []string{"first", "second", "third"} {
		check := &models.StatusCheck{ClientName: name}
		check.EnsureDefaults(at(i))
		require.NoError(t, repos.StatusChecks.Create(ctx, check))
	}

	checks, err := repos.StatusChecks.FindAll(ctx, 2)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "first", checks[0].ClientName)
	assert.Equal(t, "second", checks[1].ClientName)
}

func testUniqueSlugs(t *testing.T, open storeOpener) {
	ctx := context.Background()
	repos := openFixture(t, open)

	duplicate := models.Anime{Name: "NARUTO (again)", Slug: "naruto"}
	duplicate.EnsureDefaults(at(5))
	err := repos.Anime.CreateMany(ctx, []models.Anime{duplicate})

	var se *repository.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, repository.CollectionAnime, se.Collection)

	total, err := repos.Anime.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	character := models.Character{Name: "Itachi", Slug: "itachi-uchiha", Anime: "NARUTO", AnimeSlug: "naruto"}
	character.EnsureDefaults(at(5))
	assert.Error(t, repos.Characters.CreateMany(ctx, []models.Character{character}))
}
