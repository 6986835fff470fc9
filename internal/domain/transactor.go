package domain

import (
	"context"
	"database/sql"
)

//go:generate mockgen -destination mocks/mock_transactor.go -package mocks github.com/sagestone/sagestone/internal/domain Transactor

// Transactor runs fn inside one database transaction, committing when fn
// returns nil and rolling back otherwise
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error
}
