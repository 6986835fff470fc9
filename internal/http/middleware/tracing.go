package middleware

import (
	"net/http"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// TracingMiddleware starts an OpenCensus span per request named "METHOD /path"
func TracingMiddleware(next http.Handler) http.Handler {
	annotated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := trace.FromContext(r.Context())
		if span == nil {
			next.ServeHTTP(w, r)
			return
		}

		span.AddAttributes(
			trace.StringAttribute("http.host", r.Host),
			trace.StringAttribute("http.user_agent", r.UserAgent()),
		)
		if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
			span.AddAttributes(trace.StringAttribute("http.request_id", requestID))
		}

		next.ServeHTTP(&traceResponseWriter{ResponseWriter: w, span: span}, r)
	})

	return &ochttp.Handler{
		Handler: annotated,
		FormatSpanName: func(r *http.Request) string {
			return r.Method + " " + r.URL.Path
		},
		IsPublicEndpoint: true,
	}
}

// traceResponseWriter marks the span failed on 5xx responses
type traceResponseWriter struct {
	http.ResponseWriter
	span *trace.Span
}

func (trw *traceResponseWriter) WriteHeader(code int) {
	trw.span.AddAttributes(trace.Int64Attribute("http.status_code", int64(code)))
	if code >= http.StatusInternalServerError {
		trw.span.SetStatus(trace.Status{
			Code:    trace.StatusCodeInternal,
			Message: http.StatusText(code),
		})
	}
	trw.ResponseWriter.WriteHeader(code)
}

var _ http.ResponseWriter = (*traceResponseWriter)(nil)
