package service

import (
	"context"
	"time"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

const (
	healthCheckTimeout = 5 * time.Second

	missingDatabaseURLMessage = "DATABASE_URL environment variable is not set"
)

// HealthService reports configuration presence and store connectivity
type HealthService struct {
	repo       domain.HealthRepository
	configured bool
	logger     logger.Logger
	now        func() time.Time
}

// NewHealthService takes a nil repo when no connection string is configured
func NewHealthService(repo domain.HealthRepository, configured bool, logger logger.Logger) *HealthService {
	return &HealthService{
		repo:       repo,
		configured: configured,
		logger:     logger,
		now:        time.Now,
	}
}

var _ domain.HealthService = (*HealthService)(nil)

func (s *HealthService) Check(ctx context.Context) *domain.HealthReport {
	report := &domain.HealthReport{
		Status:    domain.HealthStatusOK,
		Timestamp: s.now().UTC(),
		Checks: domain.HealthChecks{
			Database:    domain.CheckStatusUnknown,
			Environment: domain.CheckStatusUnknown,
		},
		Errors: []string{},
	}

	if !s.configured || s.repo == nil {
		report.Checks.Environment = domain.CheckStatusError
		report.Errors = append(report.Errors, missingDatabaseURLMessage)
	} else {
		report.Checks.Environment = domain.CheckStatusOK

		pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		defer cancel()
		if err := s.repo.Ping(pingCtx); err != nil {
			s.logger.WithField("error", err.Error()).Warn("Health check database ping failed")
			report.Checks.Database = domain.CheckStatusError
			report.Errors = append(report.Errors, "Database connection failed: "+err.Error())
		} else {
			report.Checks.Database = domain.CheckStatusOK
		}
	}

	if !report.Healthy() {
		report.Status = domain.HealthStatusError
	}
	return report
}
