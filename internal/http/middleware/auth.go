package middleware

import (
	"net/http"
	"strings"

	"github.com/sagestone/sagestone/internal/domain"
)

// TokenParser validates a bearer token and returns its claims
type TokenParser interface {
	ParseToken(token string) (*domain.TokenClaims, error)
}

// AuthConfig holds what the auth middleware needs to verify tokens
type AuthConfig struct {
	Parser TokenParser
}

func NewAuthMiddleware(parser TokenParser) *AuthConfig {
	return &AuthConfig{Parser: parser}
}

// RequireAuth verifies the bearer token and stores the caller on the request context
func (ac *AuthConfig) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			claims, err := ac.Parser.ParseToken(strings.TrimSpace(token))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			if claims.UserID == "" {
				writeError(w, http.StatusUnauthorized, "User ID not found in token")
				return
			}

			ctx := domain.WithAuthenticatedUser(r.Context(), &domain.AuthenticatedUser{
				ID:    claims.UserID,
				Email: claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
