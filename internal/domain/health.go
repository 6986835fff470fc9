package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_health_repository.go -package mocks github.com/sagestone/sagestone/internal/domain HealthRepository
//go:generate mockgen -destination mocks/mock_health_service.go -package mocks github.com/sagestone/sagestone/internal/domain HealthService

type CheckStatus string

const (
	CheckStatusOK      CheckStatus = "ok"
	CheckStatusError   CheckStatus = "error"
	CheckStatusUnknown CheckStatus = "unknown"
)

// Overall report status
const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"
)

type HealthChecks struct {
	Database    CheckStatus `json:"database"`
	Environment CheckStatus `json:"environment"`
}

// HealthReport is the body of GET /api/health
type HealthReport struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Checks    HealthChecks `json:"checks"`
	Errors    []string     `json:"errors"`
}

// Healthy is true only when every check passed
func (r *HealthReport) Healthy() bool {
	return r.Checks.Database == CheckStatusOK && r.Checks.Environment == CheckStatusOK
}

type HealthService interface {
	Check(ctx context.Context) *HealthReport
}

// HealthRepository runs a trivial round-trip against the store
type HealthRepository interface {
	Ping(ctx context.Context) error
}
