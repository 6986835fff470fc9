package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/sagestone/sagestone/internal/domain UserRepository
//go:generate mockgen -destination mocks/mock_user_service.go -package mocks github.com/sagestone/sagestone/internal/domain UserServiceInterface
//go:generate mockgen -destination mocks/mock_welcome_notifier.go -package mocks github.com/sagestone/sagestone/internal/domain WelcomeNotifier

// UserRole is the platform-level role, distinct from workspace membership roles
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

// User represents an account holder
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Validate checks the fields persisted for a user
func (u *User) Validate() error {
	if u.ID == "" {
		return NewValidationError("user id is required")
	}
	if !govalidator.IsEmail(u.Email) {
		return NewValidationError("invalid email address")
	}
	if u.PasswordHash == "" {
		return NewValidationError("password hash is required")
	}
	if strings.TrimSpace(u.FirstName) == "" || strings.TrimSpace(u.LastName) == "" {
		return NewValidationError("first and last name are required")
	}
	if !u.Role.IsValid() {
		return NewValidationError("invalid user role")
	}
	return nil
}

// IsAdmin reports platform administrator access
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// UserSummary is the user shape returned by the auth endpoints
type UserSummary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

type SignupInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate requires all four fields
func (i *SignupInput) Validate() error {
	if strings.TrimSpace(i.Email) == "" || i.Password == "" ||
		strings.TrimSpace(i.FirstName) == "" || strings.TrimSpace(i.LastName) == "" {
		return NewValidationError("Missing required fields")
	}
	if !govalidator.IsEmail(strings.TrimSpace(i.Email)) {
		return NewValidationError("Invalid email address")
	}
	if len(i.Password) > MaxPasswordBytes {
		return NewValidationError("Password must be at most 72 bytes")
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i *LoginInput) Validate() error {
	if strings.TrimSpace(i.Email) == "" || i.Password == "" {
		return NewValidationError("Missing email or password")
	}
	return nil
}

// WorkspaceRef is the minimal workspace shape returned by signup and login
type WorkspaceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// AuthResult is returned by signup and login. Workspace is nil when a user
// has no memberships.
type AuthResult struct {
	User      UserSummary   `json:"user"`
	Workspace *WorkspaceRef `json:"workspace"`
	Token     string        `json:"token"`
}

// CurrentUser is returned by the me endpoint
type CurrentUser struct {
	User       UserSummary      `json:"user"`
	Role       UserRole         `json:"role"`
	Workspaces []*UserWorkspace `json:"workspaces"`
}

// UserServiceInterface covers the account endpoints
type UserServiceInterface interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, userID string) (*CurrentUser, error)
}

// WelcomeNotifier sends the onboarding email to a new account
type WelcomeNotifier interface {
	SendWelcome(ctx context.Context, email, firstName string) error
}

// AdminUser is a row of the admin user listing
type AdminUser struct {
	User
	WorkspaceID   *string `json:"workspaceId"`
	WorkspaceName *string `json:"workspaceName"`
}

type ListUsersParams struct {
	Search string
	Page   int
	Limit  int
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	CreateUserTx(ctx context.Context, tx *sql.Tx, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	// GetUserByEmail matches case-insensitively
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context, params ListUsersParams) ([]*AdminUser, error)
	CountUsers(ctx context.Context, params ListUsersParams) (int, error)
	DeleteUser(ctx context.Context, id string) error
}
