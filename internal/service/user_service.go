package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/emailerror"
	"github.com/sagestone/sagestone/pkg/logger"
	"github.com/sagestone/sagestone/pkg/tracing"
)

// welcomeTimeout bounds the detached welcome email send
const welcomeTimeout = 30 * time.Second

type UserService struct {
	accounts      *accountProvisioner
	userRepo      domain.UserRepository
	workspaceRepo domain.WorkspaceRepository
	credentials   domain.CredentialService
	notifier      domain.WelcomeNotifier
	logger        logger.Logger

	// background tracks detached welcome sends
	background sync.WaitGroup
}

type UserServiceConfig struct {
	Transactor          domain.Transactor
	UserRepository      domain.UserRepository
	WorkspaceRepository domain.WorkspaceRepository
	Credentials         domain.CredentialService
	WelcomeNotifier     domain.WelcomeNotifier
	Logger              logger.Logger
}

func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		accounts: &accountProvisioner{
			transactor:    cfg.Transactor,
			userRepo:      cfg.UserRepository,
			workspaceRepo: cfg.WorkspaceRepository,
		},
		userRepo:      cfg.UserRepository,
		workspaceRepo: cfg.WorkspaceRepository,
		credentials:   cfg.Credentials,
		notifier:      cfg.WelcomeNotifier,
		logger:        cfg.Logger,
	}
}

// Ensure UserService implements UserServiceInterface
var _ domain.UserServiceInterface = (*UserService)(nil)

// Signup registers a user, creates the workspace they own and returns a session token.
// The welcome email is sent in the background; its failure is only logged.
func (s *UserService) Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "UserService", "Signup")
	result, err := s.signup(ctx, input)
	tracing.EndSpan(span, err)
	return result, err
}

func (s *UserService) signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(input.Email)
	tracing.AddAttribute(ctx, "user.email", email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, &domain.ErrUserExists{Email: email}
	}
	var notFound *domain.ErrNotFound
	if err != nil && !errors.As(err, &notFound) {
		s.logger.WithField("email", email).WithField("error", err.Error()).Error("Failed to look up user by email")
		return nil, err
	}

	digest, err := s.credentials.HashPassword(input.Password)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to hash password")
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: digest,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         domain.UserRoleUser,
	}
	workspace, err := s.accounts.provision(ctx, user)
	if err != nil {
		var exists *domain.ErrUserExists
		if !errors.As(err, &exists) {
			s.logger.WithField("email", email).WithField("error", err.Error()).Error("Failed to create account")
		}
		return nil, err
	}

	s.sendWelcome(ctx, user)

	token, err := s.credentials.GenerateToken(user)
	if err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Error("Failed to generate token")
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).WithField("workspace_id", workspace.ID).Info("User signed up")

	return &domain.AuthResult{
		User:      user.Summary(),
		Workspace: &domain.WorkspaceRef{ID: workspace.ID, Name: workspace.Name},
		Token:     token,
	}, nil
}

func (s *UserService) sendWelcome(ctx context.Context, user *domain.User) {
	if s.notifier == nil {
		return
	}
	email, firstName := user.Email, user.FirstName
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), welcomeTimeout)
		defer cancel()
		if err := s.notifier.SendWelcome(sendCtx, email, firstName); err != nil {
			fields := map[string]interface{}{
				"email": email,
				"error": err.Error(),
			}
			var classified *emailerror.ClassifiedError
			if errors.As(err, &classified) {
				fields["provider"] = classified.Provider
				fields["error_type"] = string(classified.Type)
				fields["retryable"] = classified.Retryable
			}
			s.logger.WithFields(fields).Error("Failed to send welcome email")
		}
	}()
}

// WaitForBackground blocks until detached welcome sends finish or ctx is done
func (s *UserService) WaitForBackground(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.background.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login verifies the password and returns a token plus the primary workspace.
// Unknown emails and wrong passwords produce the same error.
func (s *UserService) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "UserService", "Login")
	result, err := s.login(ctx, input)
	tracing.EndSpan(span, err)
	return result, err
}

func (s *UserService) login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(input.Email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			s.credentials.VerifyPassword(input.Password, "")
			return nil, &domain.ErrInvalidCredentials{}
		}
		s.logger.WithField("email", email).WithField("error", err.Error()).Error("Failed to look up user by email")
		return nil, err
	}

	if !s.credentials.VerifyPassword(input.Password, user.PasswordHash) {
		s.logger.WithField("user_id", user.ID).Warn("Invalid password")
		return nil, &domain.ErrInvalidCredentials{}
	}

	workspace, err := s.workspaceRepo.GetPrimaryWorkspace(ctx, user.ID)
	if err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Error("Failed to get primary workspace")
		return nil, err
	}

	token, err := s.credentials.GenerateToken(user)
	if err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Error("Failed to generate token")
		return nil, err
	}

	result := &domain.AuthResult{User: user.Summary(), Token: token}
	if workspace != nil {
		result.Workspace = workspace.Ref()
	}
	return result, nil
}

// GetCurrentUser returns the user and every workspace they belong to
func (s *UserService) GetCurrentUser(ctx context.Context, userID string) (*domain.CurrentUser, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, &domain.ErrUnauthorized{}
		}
		return nil, err
	}

	workspaces, err := s.workspaceRepo.ListUserWorkspaces(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).WithField("error", err.Error()).Error("Failed to list user workspaces")
		return nil, err
	}

	return &domain.CurrentUser{
		User:       user.Summary(),
		Role:       user.Role,
		Workspaces: workspaces,
	}, nil
}
