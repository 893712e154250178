package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnbooks/admin-gateway/internal/audit"
)

// LoggingMiddleware logs the details of each HTTP request
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.statusCode),
				zap.Duration("duration", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
			)
		})
	}
}

// Custom ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// SecurityHeadersMiddleware adds standard security headers
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
		next.ServeHTTP(w, r)
	})
}

// auditMiddleware records every mutating admin action. Reads pass through
// untouched.
func (h *Handler) auditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		entry := audit.Entry{
			ID:        uuid.New().String(),
			Timestamp: time.Now().UTC(),
			Action:    actionName(r.URL.Path),
			Method:    r.Method,
			Path:      r.URL.Path,
			OwnerID:   r.FormValue("id"),
		}
		if admin := h.sessions.Admin(); admin != nil {
			entry.Admin = admin.Username
		}

		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		entry.StatusCode = ww.statusCode
		h.auditor.Record(r.Context(), entry)
	})
}

func actionName(path string) string {
	switch path {
	case "/login":
		return "login"
	case "/logout":
		return "logout"
	case "/owners/approve":
		return "approve_owner"
	case "/owners/reject":
		return "reject_owner"
	case "/owners/delete":
		return "delete_owner"
	case "/settings/theme":
		return "update_theme"
	}
	return "unknown"
}
