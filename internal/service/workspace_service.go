package service

import (
	"context"
	"strings"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

type WorkspaceService struct {
	repo        domain.WorkspaceRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewWorkspaceService(repo domain.WorkspaceRepository, authService domain.AuthService, logger logger.Logger) *WorkspaceService {
	return &WorkspaceService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

var _ domain.WorkspaceServiceInterface = (*WorkspaceService)(nil)

// ListWorkspaces returns the caller's workspaces, oldest membership first
func (s *WorkspaceService) ListWorkspaces(ctx context.Context) ([]*domain.UserWorkspace, error) {
	user, err := s.authService.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := s.repo.ListUserWorkspaces(ctx, user.ID)
	if err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Error("Failed to get user workspaces")
		return nil, err
	}
	return workspaces, nil
}

func (s *WorkspaceService) GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, id); err != nil {
		return nil, err
	}

	workspace, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithField("workspace_id", id).WithField("error", err.Error()).Error("Failed to get workspace by ID")
		return nil, err
	}
	return workspace, nil
}

// UpdateWorkspace changes the workspace settings. Only owners and admins may call it.
func (s *WorkspaceService) UpdateWorkspace(ctx context.Context, id string, req domain.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	member, err := s.authService.AuthenticateUserForWorkspace(ctx, id)
	if err != nil {
		return nil, err
	}
	if !member.Role.CanManage() {
		return nil, &domain.ErrForbidden{Message: "Only workspace owners and admins can update settings"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workspace, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	workspace.Name = strings.TrimSpace(req.Name)
	workspace.Website = strings.TrimSpace(req.Website)
	workspace.Industry = req.Industry
	workspace.BusinessGoal = req.BusinessGoal
	workspace.DefaultFromName = req.DefaultFromName
	workspace.DefaultFromEmail = strings.TrimSpace(req.DefaultFromEmail)
	if err := workspace.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, workspace); err != nil {
		s.logger.WithField("workspace_id", id).WithField("error", err.Error()).Error("Failed to update workspace")
		return nil, err
	}
	return workspace, nil
}

func (s *WorkspaceService) ListMembers(ctx context.Context, id string) ([]*domain.WorkspaceMemberWithUser, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, id); err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		s.logger.WithField("workspace_id", id).WithField("error", err.Error()).Error("Failed to list workspace members")
		return nil, err
	}
	return members, nil
}
