package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/repository/testutil"
)

func TestContactRepository_List(t *testing.T) {
	now := time.Now().UTC()

	t.Run("with search", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()
		repo := NewContactRepository(db)

		mock.ExpectQuery(`SELECT .* FROM contacts WHERE \(workspace_id = \$1 AND \(first_name ILIKE \$2 OR last_name ILIKE \$3 OR email ILIKE \$4\)\) ORDER BY created_at DESC, id DESC LIMIT 50 OFFSET 0`).
			WithArgs("w1", "%john%", "%john%", "%john%").
			WillReturnRows(sqlmock.NewRows(contactColumns).
				AddRow("c1", "w1", "john@example.com", "John", "Doe", "", "Acme", "active", now, now))

		contacts, err := repo.List(context.Background(), domain.ListContactsParams{WorkspaceID: "w1", Search: "john", Page: 1, Limit: 50})
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "Acme", contacts[0].Company)
		assert.NotNil(t, contacts[0].Tags)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without search", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()
		repo := NewContactRepository(db)

		mock.ExpectQuery(`SELECT .* FROM contacts WHERE \(workspace_id = \$1\) ORDER BY created_at DESC, id DESC LIMIT 20 OFFSET 40`).
			WithArgs("w1").
			WillReturnRows(sqlmock.NewRows(contactColumns))

		contacts, err := repo.List(context.Background(), domain.ListContactsParams{WorkspaceID: "w1", Page: 3, Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, contacts)
		assert.NotNil(t, contacts)
	})
}

func TestContactRepository_Count(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contacts WHERE \(workspace_id = \$1 AND`).
		WithArgs("w1", "%jo%", "%jo%", "%jo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), domain.ListContactsParams{WorkspaceID: "w1", Search: "jo"})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestContactRepository_GetByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT .* FROM contacts WHERE id = \$1 AND workspace_id = \$2`).
		WithArgs("c1", "other").
		WillReturnRows(sqlmock.NewRows(contactColumns))

	_, err := repo.GetByID(context.Background(), "other", "c1")
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestContactRepository_CreateWithTags(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	contacts := NewContactRepository(db)
	tags := NewTagRepository(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM contacts WHERE email = \$1 AND workspace_id = \$2`).
		WithArgs("new@example.com", "w1").
		WillReturnRows(sqlmock.NewRows(contactColumns))
	mock.ExpectExec(`INSERT INTO contacts`).
		WithArgs(sqlmock.AnyArg(), "w1", "new@example.com", "New", "", "", "", domain.ContactStatusActive, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO tags .* ON CONFLICT \(workspace_id, name\) DO UPDATE SET name = EXCLUDED.name RETURNING`).
		WithArgs(sqlmock.AnyArg(), "w1", "VIP", "", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "workspace_id", "name", "color", "created_at"}).AddRow("t1", "w1", "VIP", "#ff0000", now))
	mock.ExpectExec(`INSERT INTO contact_tags \(contact_id,tag_id,created_at\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(contact_id, tag_id\) DO NOTHING`).
		WithArgs(sqlmock.AnyArg(), "t1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTransactor(db).WithTransaction(context.Background(), func(tx *sql.Tx) error {
		existing, err := contacts.GetByEmailTx(context.Background(), tx, "w1", "new@example.com")
		require.NoError(t, err)
		require.Nil(t, existing)

		contact := &domain.Contact{WorkspaceID: "w1", Email: "new@example.com", FirstName: "New"}
		if err := contacts.CreateTx(context.Background(), tx, contact); err != nil {
			return err
		}
		tag, err := tags.UpsertByNameTx(context.Background(), tx, "w1", "VIP")
		if err != nil {
			return err
		}
		assert.Equal(t, "#ff0000", tag.Color)
		return contacts.SetTagsTx(context.Background(), tx, contact.ID, []string{tag.ID}, false)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_CreateTx_Duplicate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectExec(`INSERT INTO contacts`).WillReturnError(testutil.UniqueViolation("contacts_workspace_id_email_key"))

	err := repo.CreateTx(context.Background(), nil, &domain.Contact{WorkspaceID: "w1", Email: "dup@example.com"})
	var exists *domain.ErrContactExists
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "Contact with this email already exists", err.Error())
}

func TestContactRepository_UpdateAndReplaceTags(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectExec(`UPDATE contacts SET company = \$1, first_name = \$2, last_name = \$3, phone = \$4, status = \$5, updated_at = \$6 WHERE id = \$7 AND workspace_id = \$8`).
		WithArgs("Acme", "Jane", "Roe", "", domain.ContactStatusUnsubscribed, sqlmock.AnyArg(), "c1", "w1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM contact_tags WHERE contact_id = \$1`).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 2))

	contact := &domain.Contact{ID: "c1", WorkspaceID: "w1", FirstName: "Jane", LastName: "Roe", Company: "Acme", Status: domain.ContactStatusUnsubscribed}
	require.NoError(t, repo.UpdateTx(context.Background(), nil, contact))
	require.NoError(t, repo.SetTagsTx(context.Background(), nil, "c1", nil, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Delete(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectExec(`DELETE FROM contacts WHERE id = \$1 AND workspace_id = \$2`).
		WithArgs("c1", "w1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "w1", "c1"))
}

func TestContactRepository_Count_EscapesWildcards(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contacts WHERE \(workspace_id = \$1 AND`).
		WithArgs("w1", `%a\_b\%%`, `%a\_b\%%`, `%a\_b\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.Count(context.Background(), domain.ListContactsParams{WorkspaceID: "w1", Search: "a_b%"})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
