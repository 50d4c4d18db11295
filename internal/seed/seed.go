// Package seed holds the built-in catalog that populates an empty store.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"anime-quotes-backend/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var datasetYAML []byte

type AnimeRecord struct {
	Name         string  `yaml:"name"`
	Slug         string  `yaml:"slug"`
	JapaneseName string  `yaml:"japanese_name"`
	Description  string  `yaml:"description"`
	CoverImage   *string `yaml:"cover_image"`
	ReleaseYear  *int    `yaml:"release_year"`
}

type CharacterRecord struct {
	Name         string  `yaml:"name"`
	Slug         string  `yaml:"slug"`
	JapaneseName *string `yaml:"japanese_name"`
	Anime        string  `yaml:"anime"`
	AnimeSlug    string  `yaml:"anime_slug"`
	Bio          *string `yaml:"bio"`
	ImageURL     *string `yaml:"image_url"`
	Role         *string `yaml:"role"`
}

type QuoteRecord struct {
	Anime         string  `yaml:"anime"`
	AnimeSlug     string  `yaml:"anime_slug"`
	Character     string  `yaml:"character"`
	CharacterSlug string  `yaml:"character_slug"`
	Text          string  `yaml:"text"`
	ImageURL      *string `yaml:"image_url"`
	Category      *string `yaml:"category"`
	JapaneseTitle *string `yaml:"japanese_title"`
	Featured      bool    `yaml:"featured"`
}

type Dataset struct {
	Anime      []AnimeRecord     `yaml:"anime"`
	Characters []CharacterRecord `yaml:"characters"`
	Quotes     []QuoteRecord     `yaml:"quotes"`
}

// Load parses and validates the embedded dataset.
func Load() (*Dataset, error) {
	return Parse(datasetYAML)
}

func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks slug uniqueness and that every reference resolves inside the dataset.
func (ds *Dataset) Validate() error {
	anime := make(map[string]bool, len(ds.Anime))
	for _, a := range ds.Anime {
		if a.Slug == "" {
			return fmt.Errorf("anime %q has no slug", a.Name)
		}
		if anime[a.Slug] {
			return fmt.Errorf("duplicate anime slug %q", a.Slug)
		}
		anime[a.Slug] = true
	}

	characters := make(map[string]bool, len(ds.Characters))
	for _, c := range ds.Characters {
		if c.Slug == "" {
			return fmt.Errorf("character %q has no slug", c.Name)
		}
		if characters[c.Slug] {
			return fmt.Errorf("duplicate character slug %q", c.Slug)
		}
		if !anime[c.AnimeSlug] {
			return fmt.Errorf("character %q references unknown anime %q", c.Slug, c.AnimeSlug)
		}
		characters[c.Slug] = true
	}

	for i, q := range ds.Quotes {
		if q.Text == "" {
			return fmt.Errorf("quote #%d has no text", i)
		}
		if !anime[q.AnimeSlug] {
			return fmt.Errorf("quote #%d references unknown anime %q", i, q.AnimeSlug)
		}
		if !characters[q.CharacterSlug] {
			return fmt.Errorf("quote #%d references unknown character %q", i, q.CharacterSlug)
		}
	}
	return nil
}

// seedStep spaces out created_at so seeded records sort in dataset order.
// Millisecond steps survive both the postgres and mongo time precision.
const seedStep = time.Millisecond

func stamp(now time.Time, i int) time.Time {
	return now.Add(time.Duration(i) * seedStep)
}

func (ds *Dataset) AnimeModels(now time.Time) []models.Anime {
	out := make([]models.Anime, 0, len(ds.Anime))
	for i, r := range ds.Anime {
		a := models.Anime{
			Name:         r.Name,
			Slug:         r.Slug,
			JapaneseName: r.JapaneseName,
			Description:  r.Description,
			CoverImage:   r.CoverImage,
			ReleaseYear:  r.ReleaseYear,
		}
		a.EnsureDefaults(stamp(now, i))
		out = append(out, a)
	}
	return out
}

func (ds *Dataset) CharacterModels(now time.Time) []models.Character {
	out := make([]models.Character, 0, len(ds.Characters))
	for i, r := range ds.Characters {
		c := models.Character{
			Name:         r.Name,
			Slug:         r.Slug,
			JapaneseName: r.JapaneseName,
			Anime:        r.Anime,
			AnimeSlug:    r.AnimeSlug,
			Bio:          r.Bio,
			ImageURL:     r.ImageURL,
			Role:         r.Role,
		}
		c.EnsureDefaults(stamp(now, i))
		out = append(out, c)
	}
	return out
}

func (ds *Dataset) QuoteModels(now time.Time) []models.Quote {
	out := make([]models.Quote, 0, len(ds.Quotes))
	for i, r := range ds.Quotes {
		q := models.Quote{
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
		q.EnsureDefaults(stamp(now, i))
		out = append(out, q)
	}
	return out
}
