package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
	"github.com/sagestone/sagestone/pkg/tracing"
)

// AdminService backs the administration panel. Every call requires users.role = admin.
type AdminService struct {
	accounts    *accountProvisioner
	userRepo    domain.UserRepository
	authService domain.AuthService
	credentials domain.CredentialService
	logger      logger.Logger
}

type AdminServiceConfig struct {
	Transactor          domain.Transactor
	UserRepository      domain.UserRepository
	WorkspaceRepository domain.WorkspaceRepository
	AuthService         domain.AuthService
	Credentials         domain.CredentialService
	Logger              logger.Logger
}

func NewAdminService(cfg AdminServiceConfig) *AdminService {
	return &AdminService{
		accounts: &accountProvisioner{
			transactor:    cfg.Transactor,
			userRepo:      cfg.UserRepository,
			workspaceRepo: cfg.WorkspaceRepository,
		},
		userRepo:    cfg.UserRepository,
		authService: cfg.AuthService,
		credentials: cfg.Credentials,
		logger:      cfg.Logger,
	}
}

var _ domain.AdminService = (*AdminService)(nil)

func (s *AdminService) ListUsers(ctx context.Context, params domain.ListUsersParams) (*domain.ListUsersResponse, error) {
	if _, err := s.authService.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	if params.Page < 1 {
		params.Page = domain.DefaultPage
	}
	if params.Limit < 1 {
		params.Limit = domain.DefaultLimit
	}
	if params.Limit > domain.MaxLimit {
		params.Limit = domain.MaxLimit
	}
	params.Search = strings.TrimSpace(params.Search)

	users, err := s.userRepo.ListUsers(ctx, params)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to list users")
		return nil, err
	}
	total, err := s.userRepo.CountUsers(ctx, params)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to count users")
		return nil, err
	}

	return &domain.ListUsersResponse{
		Users:      users,
		Pagination: domain.NewPagination(params.Page, params.Limit, total),
	}, nil
}

// CreateUser adds an account with its default workspace. No welcome email is sent.
func (s *AdminService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.AdminUser, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "AdminService", "CreateUser")
	user, err := s.createUser(ctx, req)
	tracing.EndSpan(span, err)
	return user, err
}

func (s *AdminService) createUser(ctx context.Context, req domain.CreateUserRequest) (*domain.AdminUser, error) {
	if _, err := s.authService.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, &domain.ErrUserExists{Email: email}
	}
	var notFound *domain.ErrNotFound
	if err != nil && !errors.As(err, &notFound) {
		return nil, err
	}

	digest, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.UserRoleUser
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: digest,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         role,
	}
	workspace, err := s.accounts.provision(ctx, user)
	if err != nil {
		var exists *domain.ErrUserExists
		if !errors.As(err, &exists) {
			s.logger.WithField("email", email).WithField("error", err.Error()).Error("Failed to create user")
		}
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).WithField("role", string(role)).Info("User created by administrator")
	return &domain.AdminUser{
		User:          *user,
		WorkspaceID:   &workspace.ID,
		WorkspaceName: &workspace.Name,
	}, nil
}

// DeleteUser removes the account; memberships go with it through the foreign key.
// Workspaces the user owned are kept.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	admin, err := s.authService.RequireAdmin(ctx)
	if err != nil {
		return err
	}
	if admin.ID == id {
		return domain.NewValidationError("You cannot delete your own account")
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("user_id", id).WithField("admin_id", admin.ID).Info("User deleted by administrator")
	return nil
}
