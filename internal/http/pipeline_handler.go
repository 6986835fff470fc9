package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

type PipelineHandler struct {
	service domain.PipelineService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewPipelineHandler(service domain.PipelineService, auth *middleware.AuthConfig, logger logger.Logger) *PipelineHandler {
	return &PipelineHandler{service: service, auth: auth, logger: logger}
}

func (h *PipelineHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("GET /api/pipelines", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("POST /api/pipelines", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/pipelines/{id}", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("DELETE /api/pipelines/{id}", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *PipelineHandler) handleList(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	pipelines, err := h.service.ListPipelines(r.Context(), workspaceID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if pipelines == nil {
		pipelines = []*domain.Pipeline{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"pipelines": pipelines})
}

func (h *PipelineHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePipelineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pipeline, err := h.service.CreatePipeline(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, pipeline)
}

func (h *PipelineHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	pipeline, err := h.service.GetPipeline(r.Context(), workspaceID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, pipeline)
}

func (h *PipelineHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePipeline(r.Context(), workspaceID, r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
