package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

// AutomationService persists automation definitions. Nothing here runs them.
type AutomationService struct {
	transactor  domain.Transactor
	repo        domain.AutomationRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewAutomationService(transactor domain.Transactor, repo domain.AutomationRepository, authService domain.AuthService, logger logger.Logger) *AutomationService {
	return &AutomationService{
		transactor:  transactor,
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

var _ domain.AutomationService = (*AutomationService)(nil)

func (s *AutomationService) ListAutomations(ctx context.Context, workspaceID string) ([]*domain.Automation, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	automations, err := s.repo.List(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.attachSteps(ctx, automations); err != nil {
		return nil, err
	}
	return automations, nil
}

// CreateAutomation stores the trigger and steps; step order starts at 1
func (s *AutomationService) CreateAutomation(ctx context.Context, req domain.CreateAutomationRequest) (*domain.Automation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, req.WorkspaceID); err != nil {
		return nil, err
	}

	automation := &domain.Automation{
		WorkspaceID: req.WorkspaceID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Trigger:     req.Trigger,
		IsActive:    req.IsActive,
		Steps:       make([]*domain.AutomationStep, 0, len(req.Steps)),
	}

	err := s.transactor.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.CreateTx(ctx, tx, automation); err != nil {
			return err
		}
		for i, input := range req.Steps {
			step := &domain.AutomationStep{
				AutomationID: automation.ID,
				StepOrder:    i + 1,
				Type:         strings.TrimSpace(input.Type),
				Config:       input.Config,
			}
			if err := s.repo.CreateStepTx(ctx, tx, step); err != nil {
				return err
			}
			automation.Steps = append(automation.Steps, step)
		}
		return nil
	})
	if err != nil {
		s.logger.WithField("workspace_id", req.WorkspaceID).
			WithField("trigger_type", automation.TriggerType()).
			WithField("error", err.Error()).
			Error("Failed to create automation")
		return nil, err
	}
	return automation, nil
}

func (s *AutomationService) GetAutomation(ctx context.Context, workspaceID, id string) (*domain.Automation, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.load(ctx, workspaceID, id)
}

func (s *AutomationService) DeleteAutomation(ctx context.Context, workspaceID, id string) error {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, workspaceID, id)
}

// SetAutomationActive only flips the flag
func (s *AutomationService) SetAutomationActive(ctx context.Context, workspaceID, id string, active bool) (*domain.Automation, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	if err := s.repo.SetActive(ctx, workspaceID, id, active); err != nil {
		return nil, err
	}
	return s.load(ctx, workspaceID, id)
}

func (s *AutomationService) load(ctx context.Context, workspaceID, id string) (*domain.Automation, error) {
	automation, err := s.repo.GetByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachSteps(ctx, []*domain.Automation{automation}); err != nil {
		return nil, err
	}
	return automation, nil
}

func (s *AutomationService) attachSteps(ctx context.Context, automations []*domain.Automation) error {
	if len(automations) == 0 {
		return nil
	}
	ids := make([]string, len(automations))
	for i, a := range automations {
		ids[i] = a.ID
	}
	steps, err := s.repo.ListSteps(ctx, ids)
	if err != nil {
		return err
	}
	for _, a := range automations {
		a.Steps = steps[a.ID]
		if a.Steps == nil {
			a.Steps = []*domain.AutomationStep{}
		}
	}
	return nil
}
