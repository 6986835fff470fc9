package middleware

import (
	"net/http"
)

const databaseNotConfiguredMessage = "Database configuration error. Please contact support."

// RequireDatabase answers 503 on every route it wraps when no connection string is configured
func RequireDatabase(configured bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if configured {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusServiceUnavailable, databaseNotConfiguredMessage)
		})
	}
}
