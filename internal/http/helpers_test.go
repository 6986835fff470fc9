package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/http/middleware"
)

// stubTokenParser treats the bearer token as the user id
type stubTokenParser struct{}

func (stubTokenParser) ParseToken(token string) (*domain.TokenClaims, error) {
	if token == "invalid" {
		return nil, errors.New("token is malformed")
	}
	return &domain.TokenClaims{UserID: token, Email: token + "@example.com"}, nil
}

func testAuth() *middleware.AuthConfig {
	return middleware.NewAuthMiddleware(stubTokenParser{})
}

type stubLimiter struct {
	allow bool
}

func (l stubLimiter) Allow(namespace, key string) bool {
	return l.allow
}

// newRequest builds a request with an optional JSON body and bearer token
func newRequest(t *testing.T, method, target string, body interface{}, userID string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+userID)
	}
	return req
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
