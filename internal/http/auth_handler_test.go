package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/domain/mocks"
	"github.com/sagestone/sagestone/pkg/logger"
)

func setupAuthHandler(t *testing.T, allow bool) (*mocks.MockUserServiceInterface, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	userService := mocks.NewMockUserServiceInterface(ctrl)

	handler := NewAuthHandler(userService, testAuth(), stubLimiter{allow: allow}, false, logger.NewNoopLogger())
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return userService, mux
}

func TestAuthHandler_Signup(t *testing.T) {
	input := domain.SignupInput{Email: "a@b.com", Password: "pw123456", FirstName: "Ann", LastName: "Lee"}

	t.Run("creates account", func(t *testing.T) {
		userService, mux := setupAuthHandler(t, true)
		userService.EXPECT().Signup(gomock.Any(), input).Return(&domain.AuthResult{
			User:      domain.UserSummary{ID: "u1", Email: "a@b.com", FirstName: "Ann", LastName: "Lee"},
			Workspace: &domain.WorkspaceRef{ID: "w1", Name: "Ann's Workspace", Slug: "anns-workspace-x1y2z3"},
			Token:     "signed",
		}, nil)

		w := serve(mux, newRequest(t, http.MethodPost, "/api/auth/signup", input, ""))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "signed", body["token"])
		assert.Equal(t, "Ann's Workspace", body["workspace"].(map[string]interface{})["name"])
		assert.Equal(t, "u1", body["user"].(map[string]interface{})["id"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		userService, mux := setupAuthHandler(t, true)
		userService.EXPECT().Signup(gomock.Any(), input).Return(nil, &domain.ErrUserExists{Email: "a@b.com"})

		w := serve(mux, newRequest(t, http.MethodPost, "/api/auth/signup", input, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"User already exists"}`, w.Body.String())
	})

	t.Run("database not configured", func(t *testing.T) {
		userService, mux := setupAuthHandler(t, true)
		userService.EXPECT().Signup(gomock.Any(), input).Return(nil, &domain.ErrDatabaseNotConfigured{})

		w := serve(mux, newRequest(t, http.MethodPost, "/api/auth/signup", input, ""))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, mux := setupAuthHandler(t, true)

		w := serve(mux, newRequest(t, http.MethodPost, "/api/auth/signup", "{not json", ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	})

	t.Run("rate limited", func(t *testing.T) {
		_, mux := setupAuthHandler(t, false)

		w := serve(mux, newRequest(t, http.MethodPost, "/api/auth/signup", input, ""))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))
	})
}

func TestAuthHandler_Login(t *testing.T) {
	input := domain.LoginInput{Email: "a@b.com", Password: "wrong"}

	t.Run("invalid credentials are uniform", func(t *testing.T) {
		userService, mux := setupAuthHandler(t, true)
		userService.EXPECT().Login(gomock.Any(), input).Return(nil, &domain.ErrInvalidCredentials{})

		w := serve(mux, newRequest(t, http.MethodPost, "/api/auth/login", input, ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("user without workspace", func(t *testing.T) {
		userService, mux := setupAuthHandler(t, true)
		userService.EXPECT().Login(gomock.Any(), input).Return(&domain.AuthResult{
			User:  domain.UserSummary{ID: "u1", Email: "a@b.com"},
			Token: "signed",
		}, nil)

		w := serve(mux, newRequest(t, http.MethodPost, "/api/auth/login", input, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Nil(t, body["workspace"])
		assert.Equal(t, "signed", body["token"])
	})

	t.Run("wrong method", func(t *testing.T) {
		_, mux := setupAuthHandler(t, true)

		w := serve(mux, newRequest(t, http.MethodGet, "/api/auth/login", nil, ""))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns current user", func(t *testing.T) {
		userService, mux := setupAuthHandler(t, true)
		userService.EXPECT().GetCurrentUser(gomock.Any(), "u1").DoAndReturn(
			func(ctx context.Context, userID string) (*domain.CurrentUser, error) {
				user, ok := domain.AuthenticatedUserFromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, "u1", user.ID)
				return &domain.CurrentUser{
					User:       domain.UserSummary{ID: "u1", Email: "u1@example.com"},
					Role:       domain.UserRoleUser,
					Workspaces: []*domain.UserWorkspace{},
				}, nil
			})

		w := serve(mux, newRequest(t, http.MethodGet, "/api/auth/me", nil, "u1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user", decodeBody(t, w)["role"])
	})

	t.Run("requires token", func(t *testing.T) {
		_, mux := setupAuthHandler(t, true)

		w := serve(mux, newRequest(t, http.MethodGet, "/api/auth/me", nil, ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects bad token", func(t *testing.T) {
		_, mux := setupAuthHandler(t, true)

		w := serve(mux, newRequest(t, http.MethodGet, "/api/auth/me", nil, "invalid"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
	})
}
