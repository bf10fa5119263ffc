package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/recruitme/recruitme-go/internal/logger"
)

// responseStatus reports the status written through ww, defaulting to 200
// for handlers that never call WriteHeader.
func responseStatus(ww chimw.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// RequestLogger stores a request-scoped logger in the context and logs each
// completed request at a level chosen by its status.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base.With(
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_ip", clientIP(r)),
			)
			if rid := chimw.GetReqID(r.Context()); rid != "" {
				l = l.With(slog.String("request_id", rid))
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(logger.IntoContext(r.Context(), l)))
			dur := time.Since(start)
			status := responseStatus(ww)

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}
			l.Log(r.Context(), level, "request completed",
				slog.Int("status", status),
				slog.Int64("duration_ms", dur.Milliseconds()),
			)
		})
	}
}
