package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/domain/mocks"
	"github.com/sagestone/sagestone/pkg/logger"
)

func TestHealthService_Check(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockHealthRepository(ctrl)
		repo.EXPECT().Ping(gomock.Any()).Return(nil)

		svc := NewHealthService(repo, true, logger.NewNoopLogger())
		svc.now = func() time.Time { return now }

		report := svc.Check(context.Background())
		assert.Equal(t, domain.HealthStatusOK, report.Status)
		assert.Equal(t, domain.CheckStatusOK, report.Checks.Database)
		assert.Equal(t, domain.CheckStatusOK, report.Checks.Environment)
		assert.Empty(t, report.Errors)
		assert.NotNil(t, report.Errors)
		assert.Equal(t, now, report.Timestamp)
	})

	t.Run("missing connection string", func(t *testing.T) {
		svc := NewHealthService(nil, false, logger.NewNoopLogger())

		report := svc.Check(context.Background())
		assert.Equal(t, domain.HealthStatusError, report.Status)
		assert.Equal(t, domain.CheckStatusError, report.Checks.Environment)
		assert.Equal(t, domain.CheckStatusUnknown, report.Checks.Database)
		assert.Equal(t, []string{"DATABASE_URL environment variable is not set"}, report.Errors)
	})

	t.Run("ping fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockHealthRepository(ctrl)
		repo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		report := NewHealthService(repo, true, logger.NewNoopLogger()).Check(context.Background())
		assert.Equal(t, domain.HealthStatusError, report.Status)
		assert.Equal(t, domain.CheckStatusOK, report.Checks.Environment)
		assert.Equal(t, domain.CheckStatusError, report.Checks.Database)
		assert.Equal(t, []string{"Database connection failed: connection refused"}, report.Errors)
	})
}
