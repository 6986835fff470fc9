package domain

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/sagestone/sagestone/internal/domain AuthService
//go:generate mockgen -destination mocks/mock_credential_service.go -package mocks github.com/sagestone/sagestone/internal/domain CredentialService

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	AuthUserKey contextKey = "auth_user"
)

// AuthenticatedUser represents a user that has been authenticated
type AuthenticatedUser struct {
	ID    string
	Email string
}

// WithAuthenticatedUser stores the authenticated user on the context
func WithAuthenticatedUser(ctx context.Context, user *AuthenticatedUser) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, user.ID)
	return context.WithValue(ctx, AuthUserKey, user)
}

// AuthenticatedUserFromContext returns the user stored by the auth middleware
func AuthenticatedUserFromContext(ctx context.Context) (*AuthenticatedUser, bool) {
	user, ok := ctx.Value(AuthUserKey).(*AuthenticatedUser)
	if !ok || user == nil || user.ID == "" {
		return nil, false
	}
	return user, true
}

// TokenClaims are the claims carried by a session token
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// CredentialService hashes passwords and issues session tokens
type CredentialService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, digest string) bool
	GenerateToken(user *User) (string, error)
	ParseToken(token string) (*TokenClaims, error)
	TokenExpiry() time.Duration
}

// AuthService resolves the caller from the request context
type AuthService interface {
	AuthenticateUserFromContext(ctx context.Context) (*AuthenticatedUser, error)
	// AuthenticateUserForWorkspace returns the caller's membership or ErrForbidden
	AuthenticateUserForWorkspace(ctx context.Context, workspaceID string) (*WorkspaceMember, error)
	// RequireAdmin returns the caller when users.role is admin
	RequireAdmin(ctx context.Context) (*User, error)
}
