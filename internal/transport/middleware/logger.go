package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, user_id, role).
//
// The caller is resolved by Auth further down the chain, so the handler
// reports it back through the status writer.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			caller := sw.caller
			if !caller.IsAuthenticated() {
				caller = access.CallerFromCtx(r.Context())
			}
			if caller.IsAuthenticated() {
				attrs = append(attrs, slog.String("user_id", caller.AccountID.String()))
			}
			attrs = append(attrs, slog.String("role", caller.Role.String()))

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code
// and the caller resolved for the request.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	caller      access.Caller
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Flush lets streaming handlers push partial responses.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// reportCaller records the resolved caller on the enclosing statusWriter,
// if there is one.
func reportCaller(w http.ResponseWriter, c access.Caller) {
	for {
		switch v := w.(type) {
		case *statusWriter:
			v.caller = c
			return
		case interface{ Unwrap() http.ResponseWriter }:
			w = v.Unwrap()
		default:
			return
		}
	}
}
