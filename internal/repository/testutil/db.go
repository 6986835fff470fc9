package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// SetupMockDB creates a mock database connection for testing. Expected
// queries are matched as regular expressions.
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, mock, cleanup
}

// UniqueViolation builds the driver error PostgreSQL returns for a duplicate key
func UniqueViolation(constraint string) *pq.Error {
	return &pq.Error{Code: "23505", Constraint: constraint, Message: "duplicate key value violates unique constraint"}
}

// ConnectionFailure builds a connection-exception driver error
func ConnectionFailure() *pq.Error {
	return &pq.Error{Code: "08006", Message: "connection failure"}
}
