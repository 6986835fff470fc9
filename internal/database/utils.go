package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/sagestone/sagestone/config"
	"github.com/sagestone/sagestone/pkg/tracing"
)

const driverName = "postgres"

// GetConnectionPoolSettings returns pool settings, filling zero values with defaults
func GetConnectionPoolSettings(cfg *config.DatabaseConfig) (maxOpen, maxIdle int, maxLifetime time.Duration) {
	maxOpen, maxIdle, maxLifetime = cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime
	if maxOpen <= 0 {
		maxOpen = 25
	}
	if maxIdle <= 0 || maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	if maxLifetime <= 0 {
		maxLifetime = 10 * time.Minute
	}
	return maxOpen, maxIdle, maxLifetime
}

// Open creates the connection handle. It does not contact the server; call
// Ping to verify connectivity. The driver is wrapped for tracing when enabled.
func Open(cfg *config.DatabaseConfig, tracingCfg *config.TracingConfig) (*sql.DB, error) {
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("database URL is empty")
	}

	name := driverName
	if tracingCfg != nil {
		wrapped, err := tracing.WrapDriver(tracingCfg, driverName)
		if err != nil {
			return nil, err
		}
		name = wrapped
	}

	db, err := sql.Open(name, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ConfigurePool(db, cfg)
	return db, nil
}

// ConfigurePool applies pool settings to db
func ConfigurePool(db *sql.DB, cfg *config.DatabaseConfig) {
	maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings(cfg)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	db.SetConnMaxIdleTime(maxLifetime / 2)
}

// Ping verifies connectivity within timeout
func Ping(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
