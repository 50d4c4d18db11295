package services

import (
	"context"
	"testing"
	"time"

	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusChecks(t *testing.T) {
	ctx := context.Background()
	svc := NewStatusService(repository.NewMemoryRepositories().StatusChecks).(*statusService)
	svc.now = func() time.Time { return testNow }

	check, err := svc.CreateStatusCheck(ctx, "web-frontend")
	require.NoError(t, err)
	assert.NotEmpty(t, check.ID)
	assert.Equal(t, testNow, check.Timestamp)

	_, err = svc.CreateStatusCheck(ctx, "")
	assert.True(t, validation.IsValidationError(err))

	checks, err := svc.ListStatusChecks(ctx)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, "web-frontend", checks[0].ClientName)
}
