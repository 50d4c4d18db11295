package services

import (
	"context"
	"fmt"
	"time"

	"anime-quotes-backend/internal/models"
	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/seed"

	"github.com/sirupsen/logrus"
)

// SeedReport summarizes one seeding run.
type SeedReport struct {
	AnimeInserted      int  `json:"anime_inserted"`
	CharactersInserted int  `json:"characters_inserted"`
	QuotesInserted     int  `json:"quotes_inserted"`
	CountersRecomputed bool `json:"counters_recomputed"`
}

func (r *SeedReport) fields() logrus.Fields {
	return logrus.Fields{
		"anime_inserted":      r.AnimeInserted,
		"characters_inserted": r.CharactersInserted,
		"quotes_inserted":     r.QuotesInserted,
		"counters_recomputed": r.CountersRecomputed,
	}
}

// SeedService loads the built-in dataset into empty collections.
//
// Each collection is checked on its own, so a run interrupted half way is
// completed by the next start. Quote counters are recomputed only when the
// quotes collection itself was populated by this run.
type SeedService struct {
	anime      repository.AnimeRepository
	characters repository.CharacterRepository
	quotes     repository.QuoteRepository
	dataset    *seed.Dataset
	logger     *logrus.Logger
	now        func() time.Time
}

func NewSeedService(repos *repository.Repositories, dataset *seed.Dataset, logger *logrus.Logger) *SeedService {
	return &SeedService{
		anime:      repos.Anime,
		characters: repos.Characters,
		quotes:     repos.Quotes,
		dataset:    dataset,
		logger:     logger,
		now:        time.Now,
	}
}

// Seed stops at the first failure and returns what was done so far.
func (s *SeedService) Seed(ctx context.Context) (*SeedReport, error) {
	report := &SeedReport{}
	now := s.now()

	count, err := s.anime.Count(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to count anime: %w", err)
	}
	if count == 0 {
		s.logger.Info("Seeding database with anime data...")
		records := s.dataset.AnimeModels(now)
		if err := s.anime.CreateMany(ctx, records); err != nil {
			return report, fmt.Errorf("failed to seed anime: %w", err)
		}
		report.AnimeInserted = len(records)
		s.logger.WithField("count", len(records)).Info("Inserted anime series")
	}

	count, err = s.characters.Count(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to count characters: %w", err)
	}
	if count == 0 {
		s.logger.Info("Seeding database with character data...")
		records := s.dataset.CharacterModels(now)
		if err := s.characters.CreateMany(ctx, records); err != nil {
			return report, fmt.Errorf("failed to seed characters: %w", err)
		}
		report.CharactersInserted = len(records)
		s.logger.WithField("count", len(records)).Info("Inserted characters")
	}

	count, err = s.quotes.Count(ctx, repository.QuoteFilter{})
	if err != nil {
		return report, fmt.Errorf("failed to count quotes: %w", err)
	}
	if count == 0 {
		s.logger.Info("Seeding database with quote data...")
		records := s.dataset.QuoteModels(now)
		if err := s.quotes.CreateMany(ctx, records); err != nil {
			return report, fmt.Errorf("failed to seed quotes: %w", err)
		}
		report.QuotesInserted = len(records)
		s.logger.WithField("count", len(records)).Info("Inserted quotes")

		if err := s.recomputeCounters(ctx); err != nil {
			return report, err
		}
		report.CountersRecomputed = true
	}

	s.logger.WithFields(report.fields()).Info("Database seeding completed")
	return report, nil
}

// recomputeCounters overwrites total_quotes for every dataset anime and character.
func (s *SeedService) recomputeCounters(ctx context.Context) error {
	for _, a := range s.dataset.Anime {
		total, err := s.quotes.Count(ctx, repository.QuoteFilter{AnimeSlug: a.Slug})
		if err != nil {
			return fmt.Errorf("failed to count quotes for anime %s: %w", a.Slug, err)
		}
		if err := s.anime.SetCounter(ctx, a.Slug, models.FieldTotalQuotes, total); err != nil {
			return fmt.Errorf("failed to update quote count for anime %s: %w", a.Slug, err)
		}
	}

	for _, c := range s.dataset.Characters {
		total, err := s.quotes.Count(ctx, repository.QuoteFilter{CharacterSlug: c.Slug})
		if err != nil {
			return fmt.Errorf("failed to count quotes for character %s: %w", c.Slug, err)
		}
		if err := s.characters.SetCounter(ctx, c.Slug, models.FieldTotalQuotes, total); err != nil {
			return fmt.Errorf("failed to update quote count for character %s: %w", c.Slug, err)
		}
	}
	return nil
}
