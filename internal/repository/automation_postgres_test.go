package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/repository/testutil"
)

func TestAutomationRepository_CreateWithSteps(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewAutomationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO automations \(id,workspace_id,name,description,trigger,is_active,created_at,updated_at\)`).
		WithArgs(sqlmock.AnyArg(), "w1", "Welcome series", "", `{"type":"contact_created"}`, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO automation_steps \(id,automation_id,step_order,type,config,created_at\)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 1, "wait", "{}", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	automation := &domain.Automation{WorkspaceID: "w1", Name: "Welcome series", Trigger: json.RawMessage(`{"type":"contact_created"}`)}
	err := NewTransactor(db).WithTransaction(context.Background(), func(tx *sql.Tx) error {
		if err := repo.CreateTx(context.Background(), tx, automation); err != nil {
			return err
		}
		return repo.CreateStepTx(context.Background(), tx, &domain.AutomationStep{AutomationID: automation.ID, StepOrder: 1, Type: "wait"})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAutomationRepository_ListSteps(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewAutomationRepository(db)

	mock.ExpectQuery(`SELECT .* FROM automation_steps WHERE automation_id IN \(\$1,\$2\) ORDER BY automation_id, step_order ASC`).
		WithArgs("a1", "a2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "automation_id", "step_order", "type", "config", "created_at"}).
			AddRow("s1", "a1", 1, "send_email", []byte(`{"templateId":"t1"}`), time.Now()))

	steps, err := repo.ListSteps(context.Background(), []string{"a1", "a2"})
	require.NoError(t, err)
	require.Len(t, steps["a1"], 1)
	assert.Empty(t, steps["a2"])
	assert.JSONEq(t, `{"templateId":"t1"}`, string(steps["a1"][0].Config))
}

func TestAutomationRepository_SetActive(t *testing.T) {
	t.Run("updates the flag", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()
		repo := NewAutomationRepository(db)

		mock.ExpectExec(`UPDATE automations SET is_active = \$1, updated_at = \$2 WHERE id = \$3 AND workspace_id = \$4`).
			WithArgs(true, sqlmock.AnyArg(), "a1", "w1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetActive(context.Background(), "w1", "a1", true))
	})

	t.Run("unknown automation", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()
		repo := NewAutomationRepository(db)

		mock.ExpectExec(`UPDATE automations`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetActive(context.Background(), "w1", "a1", false)
		var notFound *domain.ErrNotFound
		assert.True(t, errors.As(err, &notFound))
	})
}
