package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

type TagHandler struct {
	service domain.TagService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewTagHandler(service domain.TagService, auth *middleware.AuthConfig, logger logger.Logger) *TagHandler {
	return &TagHandler{service: service, auth: auth, logger: logger}
}

func (h *TagHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("GET /api/tags", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("POST /api/tags", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("DELETE /api/tags/{id}", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *TagHandler) handleList(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	tags, err := h.service.ListTags(r.Context(), workspaceID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tags": tags})
}

func (h *TagHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tag, err := h.service.CreateTag(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

func (h *TagHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTag(r.Context(), workspaceID, r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
