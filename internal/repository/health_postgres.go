package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sagestone/sagestone/internal/domain"
)

type healthRepository struct {
	db *sql.DB
}

// NewHealthRepository creates the connectivity check used by the health endpoint
func NewHealthRepository(db *sql.DB) domain.HealthRepository {
	return &healthRepository{db: db}
}

// Ping runs SELECT 1 against the database
func (r *healthRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("failed to query database: %w", classifyError(err))
	}
	return nil
}
