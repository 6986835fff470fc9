package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

// AdminHandler exposes the admin panel user management. The admin role is
// checked by the service on every call.
type AdminHandler struct {
	service domain.AdminService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewAdminHandler(service domain.AdminService, auth *middleware.AuthConfig, logger logger.Logger) *AdminHandler {
	return &AdminHandler{service: service, auth: auth, logger: logger}
}

func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("GET /api/admin/users", requireAuth(http.HandlerFunc(h.handleListUsers)))
	mux.Handle("POST /api/admin/users", requireAuth(http.HandlerFunc(h.handleCreateUser)))
	mux.Handle("DELETE /api/admin/users/{id}", requireAuth(http.HandlerFunc(h.handleDeleteUser)))
}

func (h *AdminHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit := domain.ParsePage(query.Get("page"), query.Get("limit"))

	resp, err := h.service.ListUsers(r.Context(), domain.ListUsersParams{
		Search: query.Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *AdminHandler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
