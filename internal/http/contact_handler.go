package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
	"github.com/sagestone/sagestone/pkg/logger"
)

type ContactHandler struct {
	service domain.ContactService
	auth    *middleware.AuthConfig
	logger  logger.Logger
}

func NewContactHandler(service domain.ContactService, auth *middleware.AuthConfig, logger logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *ContactHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()

	mux.Handle("GET /api/contacts", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("POST /api/contacts", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/contacts/{id}", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("PUT /api/contacts/{id}", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/contacts/{id}", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *ContactHandler) handleList(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	page, limit := domain.ParsePage(query.Get("page"), query.Get("limit"))

	resp, err := h.service.ListContacts(r.Context(), domain.ListContactsParams{
		WorkspaceID: workspaceID,
		Search:      query.Get("search"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ContactHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.service.CreateContact(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	contact, err := h.service.GetContact(r.Context(), workspaceID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	var req domain.UpdateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.service.UpdateContact(r.Context(), workspaceID, r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceIDFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteContact(r.Context(), workspaceID, r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
