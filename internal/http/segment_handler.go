package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

type SegmentHandler struct {
	service domain.SegmentService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewSegmentHandler(service domain.SegmentService, auth *middleware.AuthConfig, logger logger.Logger) *SegmentHandler {
	return &SegmentHandler{service: service, auth: auth, logger: logger}
}

func (h *SegmentHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("GET /api/segments", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("POST /api/segments", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/segments/{id}", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("PUT /api/segments/{id}", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/segments/{id}", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *SegmentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	segments, err := h.service.ListSegments(r.Context(), workspaceID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if segments == nil {
		segments = []*domain.Segment{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"segments": segments})
}

func (h *SegmentHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.SegmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	segment, err := h.service.CreateSegment(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, segment)
}

func (h *SegmentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	segment, err := h.service.GetSegment(r.Context(), workspaceID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, segment)
}

func (h *SegmentHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req domain.SegmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	segment, err := h.service.UpdateSegment(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, segment)
}

func (h *SegmentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSegment(r.Context(), workspaceID, r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
