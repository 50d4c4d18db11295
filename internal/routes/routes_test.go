package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"anime-quotes-backend/internal/handlers"
	"anime-quotes-backend/internal/models"
	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/seed"
	"anime-quotes-backend/internal/services"
	"anime-quotes-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	dataset, err := seed.Load()
	require.NoError(t, err)

	repos := repository.NewMemoryRepositories()
	_, err = services.NewSeedService(repos, dataset, logger).Seed(context.Background())
	require.NoError(t, err)

	catalog := services.NewCatalogService(repos, logger)
	app := fiber.New()
	Setup(app, Handlers{
		Anime:      handlers.NewAnimeHandler(catalog, logger),
		Characters: handlers.NewCharacterHandler(catalog, logger),
		Quotes:     handlers.NewQuoteHandler(catalog, logger),
		Status:     handlers.NewStatusHandler(services.NewStatusService(repos.StatusChecks), logger),
	})
	return app, repos
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func getQuotes(t *testing.T, app *fiber.App, target string) []models.Quote {
	t.Helper()
	status, body := doRequest(t, app, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, status, string(body))

	var quotes []models.Quote
	require.NoError(t, json.Unmarshal(body, &quotes))
	return quotes
}

func TestRoot(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Anime Quotes API"}`, string(body))
}

func TestAnimeEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/anime", "")
	require.Equal(t, http.StatusOK, status)
	var anime []models.Anime
	require.NoError(t, json.Unmarshal(body, &anime))
	assert.Len(t, anime, 8)

	status, body = doRequest(t, app, http.MethodGet, "/api/anime/naruto", "")
	require.Equal(t, http.StatusOK, status)
	var naruto models.Anime
	require.NoError(t, json.Unmarshal(body, &naruto))
	assert.Equal(t, "NARUTO", naruto.Name)
	assert.Equal(t, int64(6), naruto.TotalQuotes)

	status, body = doRequest(t, app, http.MethodGet, "/api/anime/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, status)
	var errBody utils.StandardResponse
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.Equal(t, "Anime not found", errBody.Detail)
	assert.Equal(t, errBody.Message, errBody.Detail)
}

func TestCharacterEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/characters?anime_slug=bleach", "")
	require.Equal(t, http.StatusOK, status)
	var characters []models.Character
	require.NoError(t, json.Unmarshal(body, &characters))
	require.Len(t, characters, 3)
	for _, c := range characters {
		assert.Equal(t, "bleach", c.AnimeSlug)
	}

	status, body = doRequest(t, app, http.MethodGet, "/api/characters/monkey-d-luffy", "")
	require.Equal(t, http.StatusOK, status)
	var luffy models.Character
	require.NoError(t, json.Unmarshal(body, &luffy))
	assert.Equal(t, int64(2), luffy.TotalQuotes)

	status, _ = doRequest(t, app, http.MethodGet, "/api/characters/nobody", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListQuotes(t *testing.T) {
	app, _ := newTestApp(t)

	naruto := getQuotes(t, app, "/api/quotes?anime_slug=naruto")
	assert.Len(t, naruto, 6)

	filtered := getQuotes(t, app, "/api/quotes?anime_slug=naruto&category=wisdom")
	assert.Len(t, filtered, 2)

	featured := getQuotes(t, app, "/api/quotes?featured=true")
	assert.Len(t, featured, 9)

	notFeatured := getQuotes(t, app, "/api/quotes?featured=false")
	assert.Len(t, notFeatured, 17)

	limited := getQuotes(t, app, "/api/quotes?limit=5")
	assert.Len(t, limited, 5)

	for _, target := range []string{
		"/api/quotes?limit=0",
		"/api/quotes?limit=-3",
		"/api/quotes?limit=ten",
		"/api/quotes?featured=maybe",
	} {
		status, _ := doRequest(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnprocessableEntity, status, target)
	}
}

func TestFeaturedQuotes(t *testing.T) {
	app, _ := newTestApp(t)

	quotes := getQuotes(t, app, "/api/quotes/featured")
	assert.Len(t, quotes, 9)
	for _, q := range quotes {
		assert.True(t, q.Featured)
	}
}

func TestSearchQuotes(t *testing.T) {
	app, _ := newTestApp(t)

	luffy := getQuotes(t, app, "/api/quotes/search?q=luffy")
	require.Len(t, luffy, 2)
	for _, q := range luffy {
		assert.Equal(t, "monkey-d-luffy", q.CharacterSlug)
	}

	upper := getQuotes(t, app, "/api/quotes/search?q=FREEDOM")
	lower := getQuotes(t, app, "/api/quotes/search?q=freedom")
	assert.Equal(t, lower, upper)

	status, body := doRequest(t, app, http.MethodGet, "/api/quotes/search?q=xyz123-nonexistent", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, body = doRequest(t, app, http.MethodGet, "/api/quotes/search?q=", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, _ = doRequest(t, app, http.MethodGet, "/api/quotes/search", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	byAnime := getQuotes(t, app, "/api/quotes/search?q="+url.QueryEscape("Hunter × Hunter")+"&limit=1")
	assert.Len(t, byAnime, 1)
}

func TestCreateQuote(t *testing.T) {
	app, repos := newTestApp(t)
	ctx := context.Background()

	body := `{
		"id": "ignored",
		"anime": "ONE PIECE",
		"anime_slug": "one-piece",
		"character": "Monkey D. Luffy",
		"character_slug": "monkey-d-luffy",
		"text": "I don't want to conquer anything.",
		"category": "freedom"
	}`
	status, resp := doRequest(t, app, http.MethodPost, "/api/quotes", body)
	require.Equal(t, http.StatusOK, status, string(resp))

	var created models.Quote
	require.NoError(t, json.Unmarshal(resp, &created))
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "ignored", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.Featured)

	onePiece, err := repos.Anime.FindBySlug(ctx, "one-piece")
	require.NoError(t, err)
	assert.Equal(t, int64(8), onePiece.TotalQuotes)

	naruto, err := repos.Anime.FindBySlug(ctx, "naruto")
	require.NoError(t, err)
	assert.Equal(t, int64(6), naruto.TotalQuotes)

	assert.Len(t, getQuotes(t, app, "/api/quotes?character_slug=monkey-d-luffy"), 3)
}

func TestCreateQuoteRejectsInvalidBody(t *testing.T) {
	app, repos := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"text": `},
		{name: "missing text", body: `{"anime":"NARUTO","anime_slug":"naruto","character":"Naruto Uzumaki","character_slug":"naruto-uzumaki"}`},
		{name: "missing anime slug", body: `{"anime":"NARUTO","character":"Naruto Uzumaki","character_slug":"naruto-uzumaki","text":"Believe it!"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, "/api/quotes", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, status, string(body))
		})
	}

	total, err := repos.Quotes.Count(context.Background(), repository.QuoteFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(26), total)
}

func TestCreateQuoteKeepsImageURLAsSent(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name     string
		imageURL string
	}{
		{name: "relative path", imageURL: "/images/naruto.jpg"},
		{name: "bare filename", imageURL: "naruto.jpg"},
		{name: "absolute url", imageURL: "https://cdn.example.com/naruto.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"anime":"NARUTO","anime_slug":"naruto","character":"Naruto Uzumaki",` +
				`"character_slug":"naruto-uzumaki","text":"Believe it!","image_url":"` + tt.imageURL + `"}`
			status, resp := doRequest(t, app, http.MethodPost, "/api/quotes", body)
			require.Equal(t, http.StatusOK, status, string(resp))

			var created models.Quote
			require.NoError(t, json.Unmarshal(resp, &created))
			require.NotNil(t, created.ImageURL)
			assert.Equal(t, tt.imageURL, *created.ImageURL)
		})
	}

	stored := getQuotes(t, app, "/api/quotes?character_slug=naruto-uzumaki")
	urls := []string{}
	for _, q := range stored {
		if q.ImageURL != nil {
			urls = append(urls, *q.ImageURL)
		}
	}
	assert.Contains(t, urls, "/images/naruto.jpg")
}

func TestConcurrentCreatesKeepEveryIncrement(t *testing.T) {
	app, repos := newTestApp(t)
	const writers = 50

	body := `{"anime":"NARUTO","anime_slug":"naruto","character":"Naruto Uzumaki",` +
		`"character_slug":"naruto-uzumaki","text":"I never go back on my word."}`

	statuses := make(chan int, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			if err != nil {
				statuses <- 0
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	for status := range statuses {
		assert.Equal(t, http.StatusOK, status)
	}

	ctx := context.Background()
	naruto, err := repos.Anime.FindBySlug(ctx, "naruto")
	require.NoError(t, err)
	assert.Equal(t, int64(6+writers), naruto.TotalQuotes)

	character, err := repos.Characters.FindBySlug(ctx, "naruto-uzumaki")
	require.NoError(t, err)
	assert.Equal(t, int64(2+writers), character.TotalQuotes)

	total, err := repos.Quotes.Count(ctx, repository.QuoteFilter{AnimeSlug: "naruto"})
	require.NoError(t, err)
	assert.Equal(t, int64(6+writers), total)
}

func TestStatusChecks(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/status", `{"client_name":"web-frontend"}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var check models.StatusCheck
	require.NoError(t, json.Unmarshal(body, &check))
	assert.Equal(t, "web-frontend", check.ClientName)
	assert.NotEmpty(t, check.ID)

	status, _ = doRequest(t, app, http.MethodPost, "/api/status", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, status)
	var checks []models.StatusCheck
	require.NoError(t, json.Unmarshal(body, &checks))
	assert.Len(t, checks, 1)
}

func TestUploadRouteAbsentWithoutStorage(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doRequest(t, app, http.MethodGet, "/api/upload/presign?filename=a.png", "")
	assert.Equal(t, http.StatusNotFound, status)
}
