package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

// AutomationHandler stores automations. Nothing here executes them.
type AutomationHandler struct {
	service domain.AutomationService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewAutomationHandler(service domain.AutomationService, auth *middleware.AuthConfig, logger logger.Logger) *AutomationHandler {
	return &AutomationHandler{service: service, auth: auth, logger: logger}
}

func (h *AutomationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("GET /api/automations", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("POST /api/automations", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/automations/{id}", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("DELETE /api/automations/{id}", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("POST /api/automations/{id}/activate", requireAuth(h.handleSetActive(true)))
	mux.Handle("POST /api/automations/{id}/deactivate", requireAuth(h.handleSetActive(false)))
}

func (h *AutomationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	automations, err := h.service.ListAutomations(r.Context(), workspaceID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if automations == nil {
		automations = []*domain.Automation{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"automations": automations})
}

func (h *AutomationHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAutomationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	automation, err := h.service.CreateAutomation(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, automation)
}

func (h *AutomationHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	automation, err := h.service.GetAutomation(r.Context(), workspaceID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, automation)
}

func (h *AutomationHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAutomation(r.Context(), workspaceID, r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AutomationHandler) handleSetActive(active bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID, ok := workspaceIDFromQuery(w, r)
		if !ok {
			return
		}

		automation, err := h.service.SetAutomationActive(r.Context(), workspaceID, r.PathValue("id"), active)
		if err != nil {
			writeServiceError(w, h.logger, err)
			return
		}

		writeJSON(w, http.StatusOK, automation)
	})
}
