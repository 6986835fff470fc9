package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

// CampaignHandler serves campaign CRUD and the read-only stats view
type CampaignHandler struct {
	service domain.CampaignService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewCampaignHandler(service domain.CampaignService, auth *middleware.AuthConfig, logger logger.Logger) *CampaignHandler {
	return &CampaignHandler{service: service, auth: auth, logger: logger}
}

func (h *CampaignHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("GET /api/campaigns", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("POST /api/campaigns", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/campaigns/{id}", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("PUT /api/campaigns/{id}", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/campaigns/{id}", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("GET /api/campaigns/{id}/stats", requireAuth(http.HandlerFunc(h.handleStats)))
}

func (h *CampaignHandler) handleList(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	campaigns, err := h.service.ListCampaigns(r.Context(), workspaceID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if campaigns == nil {
		campaigns = []*domain.Campaign{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"campaigns": campaigns})
}

func (h *CampaignHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	campaign, err := h.service.CreateCampaign(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	campaign, err := h.service.GetCampaign(r.Context(), workspaceID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	campaign, err := h.service.UpdateCampaign(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCampaign(r.Context(), workspaceID, r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CampaignHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	stats, err := h.service.GetCampaignStats(r.Context(), workspaceID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
