package service

import (
	"context"
	"errors"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

// AuthService resolves the caller set on the context by the auth middleware
type AuthService struct {
	userRepo      domain.UserRepository
	workspaceRepo domain.WorkspaceRepository
	logger        logger.Logger
}

type AuthServiceConfig struct {
	UserRepository      domain.UserRepository
	WorkspaceRepository domain.WorkspaceRepository
	Logger              logger.Logger
}

func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:      cfg.UserRepository,
		workspaceRepo: cfg.WorkspaceRepository,
		logger:        cfg.Logger,
	}
}

var _ domain.AuthService = (*AuthService)(nil)

func (s *AuthService) AuthenticateUserFromContext(ctx context.Context) (*domain.AuthenticatedUser, error) {
	user, ok := domain.AuthenticatedUserFromContext(ctx)
	if !ok {
		return nil, &domain.ErrUnauthorized{}
	}
	return user, nil
}

// AuthenticateUserForWorkspace checks that the caller is a member of workspaceID.
// Missing workspaces and missing memberships look the same to the caller.
func (s *AuthService) AuthenticateUserForWorkspace(ctx context.Context, workspaceID string) (*domain.WorkspaceMember, error) {
	user, err := s.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	member, err := s.workspaceRepo.GetMember(ctx, workspaceID, user.ID)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			s.logger.WithField("user_id", user.ID).WithField("workspace_id", workspaceID).Warn("User is not a member of workspace")
			return nil, &domain.ErrForbidden{Message: "You do not have access to this workspace"}
		}
		s.logger.WithField("user_id", user.ID).WithField("workspace_id", workspaceID).WithField("error", err.Error()).Error("Failed to get workspace membership")
		return nil, err
	}
	return member, nil
}

// RequireAdmin loads the caller and requires the platform admin role
func (s *AuthService) RequireAdmin(ctx context.Context) (*domain.User, error) {
	authUser, err := s.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, authUser.ID)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, &domain.ErrUnauthorized{}
		}
		s.logger.WithField("user_id", authUser.ID).WithField("error", err.Error()).Error("Failed to get user by ID")
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, &domain.ErrForbidden{Message: "Admin access required"}
	}
	return user, nil
}
