package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sagestone/sagestone/internal/database/schema"
)

// InitializeDatabase creates all tables and indexes if they don't exist.
// When adminEmail is set, the matching user is promoted to platform admin.
func InitializeDatabase(ctx context.Context, db *sql.DB, adminEmail string) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, query := range schema.IndexDefinitions {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if adminEmail != "" {
		_, err := db.ExecContext(ctx,
			`UPDATE users SET role = 'admin', updated_at = NOW() WHERE LOWER(email) = LOWER($1) AND role <> 'admin'`,
			adminEmail,
		)
		if err != nil {
			return fmt.Errorf("failed to promote admin user: %w", err)
		}
	}

	return nil
}

// CleanDatabase drops all tables, children first
func CleanDatabase(ctx context.Context, db *sql.DB) error {
	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", schema.TableNames[i])
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schema.TableNames[i], err)
		}
	}
	return nil
}
