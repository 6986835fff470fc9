package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a JSON request body into v and answers 400 when it cannot
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// workspaceIDFromQuery returns the workspaceId query value, answering 400 when it is missing
func workspaceIDFromQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	workspaceID := strings.TrimSpace(r.URL.Query().Get("workspaceId"))
	if workspaceID == "" {
		WriteJSONError(w, "Workspace ID is required", http.StatusBadRequest)
		return "", false
	}
	return workspaceID, true
}

// statusForError maps a service error onto the HTTP status and the message the client sees.
// Unknown errors never leak their text.
func statusForError(err error) (int, string) {
	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	var userExists *domain.ErrUserExists
	var contactExists *domain.ErrContactExists
	var conflict *domain.ErrConflict
	var transition *domain.ErrInvalidTransition
	var invalidCredentials *domain.ErrInvalidCredentials
	var unauthorized *domain.ErrUnauthorized
	var forbidden *domain.ErrForbidden
	var notFound *domain.ErrNotFound
	var notConfigured *domain.ErrDatabaseNotConfigured
	var unavailable *domain.ErrDatabaseUnavailable

	switch {
	case errors.As(err, &userExists):
		return http.StatusBadRequest, userExists.Error()
	case errors.As(err, &contactExists):
		return http.StatusBadRequest, contactExists.Error()
	case errors.As(err, &conflict):
		return http.StatusBadRequest, "Resource already exists"
	case errors.As(err, &transition):
		return http.StatusBadRequest, transition.Error()
	case errors.As(err, &invalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized, unauthorized.Error()
	case errors.As(err, &forbidden):
		return http.StatusForbidden, forbidden.Error()
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error()
	case errors.As(err, &notConfigured):
		return http.StatusServiceUnavailable, "Database configuration error. Please contact support."
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable, "Database connection failed. Please contact support."
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// writeServiceError answers with the status for err, logging anything the client cannot fix
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		log.WithField("status", status).WithField("error", err.Error()).Error("Request failed")
	}
	WriteJSONError(w, message, status)
}
