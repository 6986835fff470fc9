package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/asaskevich/govalidator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/pkg/crypto"
	"github.com/sagestone/sagestone/pkg/logger"
)

func anyQuery(expectedSQL, actualSQL string) error { return nil }

func newSeedMock(t *testing.T) (*Seeder, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(anyQuery)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSeeder(db, crypto.NewPasswordHasher(4), logger.NewNoopLogger()), mock
}

func expectLookup(mock sqlmock.Sqlmock, id string) {
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
}

func expectInsert(mock sqlmock.Sqlmock) {
	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestSeedID(t *testing.T) {
	assert.Equal(t, seedID("tag", "ws", "VIP"), seedID("tag", "ws", "VIP"))
	assert.NotEqual(t, seedID("tag", "ws", "VIP"), seedID("tag", "ws", "Lead"))
	assert.Len(t, seedID("user"), 36)
}

func TestRandomColor(t *testing.T) {
	for i := 0; i < 50; i++ {
		color := randomColor()
		assert.Len(t, color, 7)
		assert.True(t, govalidator.IsHexcolor(color), color)
	}
}

func TestSeeder_Run(t *testing.T) {
	seeder, mock := newSeedMock(t)

	mock.ExpectBegin()

	// user
	expectInsert(mock)
	expectLookup(mock, "user-1")

	// workspace and owner membership
	expectInsert(mock)
	expectLookup(mock, "ws-1")
	expectInsert(mock)

	for _, name := range demoTags {
		expectInsert(mock)
		expectLookup(mock, "tag-"+name)
	}

	for i, c := range demoContacts {
		expectInsert(mock)
		expectLookup(mock, fmt.Sprintf("contact-%d", i))
		for range c.tags {
			expectInsert(mock)
		}
	}

	// segment, campaign and stats
	expectInsert(mock)
	expectInsert(mock)
	expectInsert(mock)

	// pipeline and stages
	expectInsert(mock)
	for range demoStages {
		expectInsert(mock)
	}

	// automation and steps
	expectInsert(mock)
	for i := 0; i < 3; i++ {
		expectInsert(mock)
	}

	mock.ExpectCommit()

	require.NoError(t, seeder.Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_Run_RollsBackOnError(t *testing.T) {
	seeder, mock := newSeedMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT").WillReturnError(errors.New("relation \"users\" does not exist"))
	mock.ExpectRollback()

	err := seeder.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed user")
	assert.NoError(t, mock.ExpectationsWereMet())
}
