package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

// AuthRateLimitNamespace is the limiter namespace shared by signup and login
const AuthRateLimitNamespace = "auth"

// AuthHandler handles signup, login and the current user endpoint
type AuthHandler struct {
	userService domain.UserServiceInterface
	auth        *middleware.AuthConfig
	limiter     middleware.Limiter
	trustProxy  bool
	logger      logger.Logger
}

func NewAuthHandler(
	userService domain.UserServiceInterface,
	auth *middleware.AuthConfig,
	limiter middleware.Limiter,
	trustProxyHeaders bool,
	logger logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		auth:        auth,
		limiter:     limiter,
		trustProxy:  trustProxyHeaders,
		logger:      logger,
	}
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()
	rateLimited := middleware.RateLimit(h.limiter, AuthRateLimitNamespace, h.trustProxy, h.logger)

	mux.Handle("POST /api/auth/signup", rateLimited(http.HandlerFunc(h.handleSignup)))
	mux.Handle("POST /api/auth/login", rateLimited(http.HandlerFunc(h.handleLogin)))
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(h.handleMe)))
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var input domain.SignupInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.userService.Signup(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input domain.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.userService.Login(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	authUser, ok := domain.AuthenticatedUserFromContext(r.Context())
	if !ok {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	current, err := h.userService.GetCurrentUser(r.Context(), authUser.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, current)
}
