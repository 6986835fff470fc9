package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

// WorkspaceHandler handles HTTP requests for workspace operations
type WorkspaceHandler struct {
	workspaceService domain.WorkspaceServiceInterface
	auth             *middleware.AuthConfig
	logger           logger.Logger
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(
	workspaceService domain.WorkspaceServiceInterface,
	auth *middleware.AuthConfig,
	logger logger.Logger,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		auth:             auth,
		logger:           logger,
	}
}

// RegisterRoutes registers the workspace routes behind authentication
func (h *WorkspaceHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("GET /api/workspaces", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /api/workspaces/{id}", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("PUT /api/workspaces/{id}", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("GET /api/workspaces/{id}/members", requireAuth(http.HandlerFunc(h.handleMembers)))
}

func (h *WorkspaceHandler) handleList(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.workspaceService.ListWorkspaces(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if workspaces == nil {
		workspaces = []*domain.UserWorkspace{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"workspaces": workspaces})
}

func (h *WorkspaceHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	workspace, err := h.workspaceService.GetWorkspace(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, workspace)
}

func (h *WorkspaceHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateWorkspaceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	workspace, err := h.workspaceService.UpdateWorkspace(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, workspace)
}

func (h *WorkspaceHandler) handleMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.workspaceService.ListMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if members == nil {
		members = []*domain.WorkspaceMemberWithUser{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}
