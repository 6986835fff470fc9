package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

func TestWriteJSONError(t *testing.T) {
	testCases := []struct {
		name       string
		message    string
		statusCode int
	}{
		{
			name:       "bad_request",
			message:    "Bad request",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "unauthorized",
			message:    "Unauthorized access",
			statusCode: http.StatusUnauthorized,
		},
		{
			name:       "internal_server_error",
			message:    "Internal server error",
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteJSONError(w, tc.message, tc.statusCode)

			assert.Equal(t, tc.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var response map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tc.message, response["error"])
		})
	}
}

func TestWriteJSONError_EncoderFailure(t *testing.T) {
	w := &failingResponseWriter{
		ResponseWriter: httptest.NewRecorder(),
		failOnWrite:    true,
	}

	// This should not panic even if encoding fails
	WriteJSONError(w, "Test message", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, w.status)
	assert.Equal(t, "application/json", w.headers.Get("Content-Type"))
}

// A mock response writer that can be made to fail during Write
type failingResponseWriter struct {
	ResponseWriter http.ResponseWriter
	failOnWrite    bool
	status         int
	headers        http.Header
}

func (f *failingResponseWriter) Header() http.Header {
	if f.headers == nil {
		f.headers = make(http.Header)
	}
	return f.headers
}

func (f *failingResponseWriter) Write(b []byte) (int, error) {
	if f.failOnWrite {
		return 0, assert.AnError
	}
	return f.ResponseWriter.Write(b)
}

func (f *failingResponseWriter) WriteHeader(statusCode int) {
	f.status = statusCode
	f.ResponseWriter.WriteHeader(statusCode)
}

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", domain.NewValidationError("Missing required fields"), http.StatusBadRequest, "Missing required fields"},
		{"wrapped validation", fmt.Errorf("outer: %w", domain.NewValidationError("Invalid email address")), http.StatusBadRequest, "Invalid email address"},
		{"user exists", &domain.ErrUserExists{Email: "a@b.com"}, http.StatusBadRequest, "User already exists"},
		{"contact exists", &domain.ErrContactExists{}, http.StatusBadRequest, "Contact with this email already exists"},
		{"conflict", &domain.ErrConflict{Constraint: "tags_workspace_id_name_key"}, http.StatusBadRequest, "Resource already exists"},
		{"transition", &domain.ErrInvalidTransition{From: domain.CampaignStatusSent, To: domain.CampaignStatusDraft}, http.StatusBadRequest, "cannot change campaign status from sent to draft"},
		{"invalid credentials", &domain.ErrInvalidCredentials{}, http.StatusUnauthorized, "Invalid credentials"},
		{"unauthorized", &domain.ErrUnauthorized{}, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", &domain.ErrForbidden{Message: "Not a member of this workspace"}, http.StatusForbidden, "Not a member of this workspace"},
		{"not found", fmt.Errorf("failed to get contact: %w", &domain.ErrNotFound{Entity: "contact", ID: "c1"}), http.StatusNotFound, "contact not found with ID: c1"},
		{"not configured", &domain.ErrDatabaseNotConfigured{}, http.StatusServiceUnavailable, "Database configuration error. Please contact support."},
		{"unavailable", fmt.Errorf("failed to list: %w", &domain.ErrDatabaseUnavailable{Err: errors.New("connection refused")}), http.StatusServiceUnavailable, "Database connection failed. Please contact support."},
		{"unknown", errors.New("pq: relation \"users\" does not exist"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := statusForError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMessage, message)
		})
	}
}

func TestWriteServiceError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, logger.NewNoopLogger(), errors.New("dial tcp 10.0.0.5:5432: secret detail"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, strings.Contains(w.Body.String(), "secret detail"))
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestWorkspaceIDFromQuery(t *testing.T) {
	w := httptest.NewRecorder()
	_, ok := workspaceIDFromQuery(w, httptest.NewRequest(http.MethodGet, "/api/tags", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Workspace ID is required"}`, w.Body.String())

	w = httptest.NewRecorder()
	id, ok := workspaceIDFromQuery(w, httptest.NewRequest(http.MethodGet, "/api/tags?workspaceId=ws1", nil))
	assert.True(t, ok)
	assert.Equal(t, "ws1", id)
}
