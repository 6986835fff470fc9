package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/sagestone/sagestone/internal/domain"
)

// psql is a Squirrel StatementBuilder configured for PostgreSQL
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper escapes LIKE wildcards; backslash is the default escape character in PostgreSQL
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern matches search as a literal substring
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// pick returns tx when set, db otherwise
func pick(db *sql.DB, tx *sql.Tx) interface {
	execer
	queryer
} {
	if tx != nil {
		return tx
	}
	return db
}

type transactor struct {
	db *sql.DB
}

// NewTransactor creates the transaction runner shared by services
func NewTransactor(db *sql.DB) domain.Transactor {
	return &transactor{db: db}
}

// WithTransaction executes a function within a transaction
func (t *transactor) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if t.db == nil {
		return &domain.ErrDatabaseNotConfigured{}
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classifyError(err))
	}

	// Defer rollback - this will be a no-op if we successfully commit
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classifyError(err))
	}

	return nil
}

// deleteScoped removes one row by (id, workspace_id), returning ErrNotFound
// when nothing matched
func deleteScoped(ctx context.Context, db *sql.DB, table, entity, workspaceID, id string) error {
	query, args, err := psql.
		Delete(table).
		Where(sq.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", entity, classifyError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: entity, ID: id}
	}
	return nil
}
