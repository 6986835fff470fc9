package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/domain/mocks"
	"github.com/sagestone/sagestone/pkg/logger"
)

func TestAutomationService_CreateAutomation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactor := mocks.NewMockTransactor(ctrl)
	repo := mocks.NewMockAutomationRepository(ctrl)
	authService := mocks.NewMockAuthService(ctrl)
	svc := NewAutomationService(transactor, repo, authService, logger.NewNoopLogger())
	ctx := context.Background()

	req := domain.CreateAutomationRequest{
		WorkspaceID: "w1",
		Name:        "Welcome Email Sequence",
		Trigger:     json.RawMessage(`{"type":"segment_joined","segmentId":"s1"}`),
		IsActive:    true,
		Steps: []domain.AutomationStepInput{
			{Type: "send_email", Config: json.RawMessage(`{"subject":"Welcome"}`)},
			{Type: "wait", Config: json.RawMessage(`{"days":2}`)},
			{Type: "send_email"},
		},
	}

	authService.EXPECT().AuthenticateUserForWorkspace(ctx, "w1").Return(ownerOf("w1"), nil)
	runInline(transactor)
	repo.EXPECT().CreateTx(ctx, gomock.Nil(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sql.Tx, a *domain.Automation) error {
		a.ID = "a1"
		return nil
	})
	repo.EXPECT().CreateStepTx(ctx, gomock.Nil(), gomock.Any()).Return(nil).Times(3)

	automation, err := svc.CreateAutomation(ctx, req)
	require.NoError(t, err)
	require.Len(t, automation.Steps, 3)
	for i, step := range automation.Steps {
		assert.Equal(t, i+1, step.StepOrder)
		assert.Equal(t, "a1", step.AutomationID)
	}
	assert.Equal(t, "segment_joined", automation.TriggerType())
	assert.True(t, automation.IsActive)
}

func TestAutomationService_CreateAutomation_InvalidTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAutomationService(mocks.NewMockTransactor(ctrl), mocks.NewMockAutomationRepository(ctrl), mocks.NewMockAuthService(ctrl), logger.NewNoopLogger())

	_, err := svc.CreateAutomation(context.Background(), domain.CreateAutomationRequest{
		WorkspaceID: "w1",
		Name:        "Broken",
		Trigger:     json.RawMessage(`"segment_joined"`),
	})
	var validation domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestAutomationService_SetAutomationActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAutomationRepository(ctrl)
	authService := mocks.NewMockAuthService(ctrl)
	svc := NewAutomationService(mocks.NewMockTransactor(ctrl), repo, authService, logger.NewNoopLogger())
	ctx := context.Background()

	t.Run("deactivate", func(t *testing.T) {
		authService.EXPECT().AuthenticateUserForWorkspace(ctx, "w1").Return(ownerOf("w1"), nil)
		repo.EXPECT().SetActive(ctx, "w1", "a1", false).Return(nil)
		repo.EXPECT().GetByID(ctx, "w1", "a1").Return(&domain.Automation{ID: "a1", IsActive: false}, nil)
		repo.EXPECT().ListSteps(ctx, []string{"a1"}).Return(map[string][]*domain.AutomationStep{
			"a1": {{ID: "s1", StepOrder: 1}},
		}, nil)

		automation, err := svc.SetAutomationActive(ctx, "w1", "a1", false)
		require.NoError(t, err)
		assert.False(t, automation.IsActive)
		assert.Len(t, automation.Steps, 1)
	})

	t.Run("unknown automation", func(t *testing.T) {
		authService.EXPECT().AuthenticateUserForWorkspace(ctx, "w1").Return(ownerOf("w1"), nil)
		repo.EXPECT().SetActive(ctx, "w1", "a9", true).Return(&domain.ErrNotFound{Entity: "automation", ID: "a9"})

		_, err := svc.SetAutomationActive(ctx, "w1", "a9", true)
		var notFound *domain.ErrNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestAutomationService_ListGetDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAutomationRepository(ctrl)
	authService := mocks.NewMockAuthService(ctrl)
	svc := NewAutomationService(mocks.NewMockTransactor(ctrl), repo, authService, logger.NewNoopLogger())
	ctx := context.Background()

	authService.EXPECT().AuthenticateUserForWorkspace(ctx, "w1").Return(ownerOf("w1"), nil).Times(3)
	repo.EXPECT().List(ctx, "w1").Return([]*domain.Automation{}, nil)
	repo.EXPECT().GetByID(ctx, "w1", "a1").Return(&domain.Automation{ID: "a1"}, nil)
	repo.EXPECT().ListSteps(ctx, []string{"a1"}).Return(map[string][]*domain.AutomationStep{}, nil)
	repo.EXPECT().Delete(ctx, "w1", "a1").Return(nil)

	automations, err := svc.ListAutomations(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, automations)

	automation, err := svc.GetAutomation(ctx, "w1", "a1")
	require.NoError(t, err)
	assert.NotNil(t, automation.Steps)

	assert.NoError(t, svc.DeleteAutomation(ctx, "w1", "a1"))
}
