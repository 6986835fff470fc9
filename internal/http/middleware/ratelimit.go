package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/sagestone/sagestone/pkg/logger"
)

// Limiter is satisfied by ratelimiter.RateLimiter
type Limiter interface {
	Allow(namespace, key string) bool
}

// RateLimit rejects requests once the client IP has spent its budget in namespace.
// Forwarding headers are only consulted when trustProxyHeaders is set.
func RateLimit(limiter Limiter, namespace string, trustProxyHeaders bool, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r, trustProxyHeaders)
			if !limiter.Allow(namespace, ip) {
				log.WithField("namespace", namespace).WithField("ip", ip).Warn("Rate limit exceeded")
				w.Header().Set("Retry-After", "60")
				writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the remote address host. With trustProxyHeaders it prefers
// the first X-Forwarded-For entry, then X-Real-IP.
func ClientIP(r *http.Request, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
			return realIP
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
