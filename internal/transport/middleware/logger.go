package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/receptionist-backend/internal/observer"
	"github.com/heartmarshall/receptionist-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// route, status code, duration, request_id and, once a guard resolved it,
// user_id.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			ctx, trace := ctxutil.WithTrace(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if trace.Route != "" {
				attrs = append(attrs, slog.String("route", trace.Route))
			}
			if trace.UserID != "" {
				attrs = append(attrs, slog.String("user_id", trace.UserID))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// Metrics counts requests by matched route and status.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			ctx, trace := ctxutil.WithTrace(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			observer.ObserveHTTPRequest(trace.Route, sw.status)
		})
	}
}
