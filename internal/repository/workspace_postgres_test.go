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

func workspaceRow(rows *sqlmock.Rows, id, name, slug string, now time.Time, extra ...interface{}) *sqlmock.Rows {
	values := []interface{}{id, name, slug, "", "", "", "", "", now, now}
	return rows.AddRow(append(values, extra...)...)
}

func TestWorkspaceRepository_CreateTx(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewWorkspaceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO workspaces \(id,name,slug,website,industry,business_goal,default_from_name,default_from_email,created_at,updated_at\)`).
		WithArgs(sqlmock.AnyArg(), "Ann's Workspace", "ann-workspace-abc12345", "", "", "", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO workspace_members \(user_id,workspace_id,role,joined_at\)`).
		WithArgs("u1", sqlmock.AnyArg(), domain.MemberRoleOwner, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTransactor(db).WithTransaction(context.Background(), func(tx *sql.Tx) error {
		ws := &domain.Workspace{Name: "Ann's Workspace", Slug: "ann-workspace-abc12345"}
		if err := repo.CreateTx(context.Background(), tx, ws); err != nil {
			return err
		}
		assert.NotEmpty(t, ws.ID)
		return repo.AddMemberTx(context.Background(), tx, &domain.WorkspaceMember{UserID: "u1", WorkspaceID: ws.ID, Role: domain.MemberRoleOwner})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspaceRepository_GetByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewWorkspaceRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .* FROM workspaces WHERE id = \$1`).
		WithArgs("w1").
		WillReturnRows(workspaceRow(sqlmock.NewRows(workspaceColumns), "w1", "Demo Company", "demo-workspace", now))

	ws, err := repo.GetByID(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "demo-workspace", ws.Slug)

	mock.ExpectQuery(`SELECT .* FROM workspaces`).WithArgs("w2").WillReturnRows(sqlmock.NewRows(workspaceColumns))
	_, err = repo.GetByID(context.Background(), "w2")
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestWorkspaceRepository_Update(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewWorkspaceRepository(db)

	mock.ExpectExec(`UPDATE workspaces SET business_goal = \$1, default_from_email = \$2, default_from_name = \$3, industry = \$4, name = \$5, updated_at = \$6, website = \$7 WHERE id = \$8`).
		WithArgs("lead_gen", "", "", "Technology", "Renamed", sqlmock.AnyArg(), "", "w1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &domain.Workspace{ID: "w1", Name: "Renamed", Industry: "Technology", BusinessGoal: "lead_gen"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkspaceRepository_GetMember(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewWorkspaceRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT user_id, workspace_id, role, joined_at FROM workspace_members WHERE user_id = \$1 AND workspace_id = \$2`).
		WithArgs("u1", "w1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "workspace_id", "role", "joined_at"}).AddRow("u1", "w1", "owner", now))

	member, err := repo.GetMember(context.Background(), "w1", "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.MemberRoleOwner, member.Role)

	mock.ExpectQuery(`FROM workspace_members`).
		WithArgs("u2", "w1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "workspace_id", "role", "joined_at"}))
	_, err = repo.GetMember(context.Background(), "w1", "u2")
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestWorkspaceRepository_UserWorkspaces(t *testing.T) {
	now := time.Now().UTC()
	columns := append(append([]string{}, workspaceColumns...), "role", "joined_at")

	t.Run("lists ordered by joined_at then workspace id", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()
		repo := NewWorkspaceRepository(db)

		rows := sqlmock.NewRows(columns)
		workspaceRow(rows, "w1", "First", "first", now, "owner", now)
		workspaceRow(rows, "w2", "Second", "second", now, "user", now.Add(time.Hour))

		mock.ExpectQuery(`FROM workspace_members m JOIN workspaces w ON w.id = m.workspace_id WHERE m.user_id = \$1 ORDER BY m.joined_at ASC, m.workspace_id ASC`).
			WithArgs("u1").
			WillReturnRows(rows)

		list, err := repo.ListUserWorkspaces(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, domain.MemberRoleOwner, list[0].Role)
		assert.Equal(t, "Second", list[1].Name)
	})

	t.Run("primary workspace", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()
		repo := NewWorkspaceRepository(db)

		rows := sqlmock.NewRows(columns)
		workspaceRow(rows, "w1", "First", "first", now, "owner", now)
		mock.ExpectQuery(`ORDER BY m.joined_at ASC, m.workspace_id ASC LIMIT 1`).WithArgs("u1").WillReturnRows(rows)

		ws, err := repo.GetPrimaryWorkspace(context.Background(), "u1")
		require.NoError(t, err)
		require.NotNil(t, ws)
		assert.Equal(t, "w1", ws.ID)
	})

	t.Run("no membership", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()
		repo := NewWorkspaceRepository(db)

		mock.ExpectQuery(`LIMIT 1`).WithArgs("u1").WillReturnRows(sqlmock.NewRows(columns))

		ws, err := repo.GetPrimaryWorkspace(context.Background(), "u1")
		require.NoError(t, err)
		assert.Nil(t, ws)
	})
}

func TestWorkspaceRepository_ListMembers(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewWorkspaceRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM workspace_members m JOIN users u ON u.id = m.user_id WHERE m.workspace_id = \$1`).
		WithArgs("w1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "workspace_id", "role", "joined_at", "email", "first_name", "last_name"}).
			AddRow("u1", "w1", "owner", now, "ann@example.com", "Ann", "Lee"))

	members, err := repo.ListMembers(context.Background(), "w1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "ann@example.com", members[0].Email)
}
