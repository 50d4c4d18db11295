package services

import (
	"context"
	"fmt"
	"time"

	"anime-quotes-backend/internal/models"
	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/validation"
)

type StatusService interface {
	CreateStatusCheck(ctx context.Context, clientName string) (*models.StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error)
}

type statusService struct {
	repo repository.StatusCheckRepository
	now  func() time.Time
}

func NewStatusService(repo repository.StatusCheckRepository) StatusService {
	return &statusService{repo: repo, now: time.Now}
}

func (s *statusService) CreateStatusCheck(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	if clientName == "" {
		return nil, validation.Errorf("client_name is required")
	}

	check := &models.StatusCheck{ClientName: clientName}
	check.EnsureDefaults(s.now())

	if err := s.repo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to record status check: %w", err)
	}
	return check, nil
}

func (s *statusService) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	return s.repo.FindAll(ctx, CatalogListLimit)
}
