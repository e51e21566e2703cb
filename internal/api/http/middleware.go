package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
	"foodcourt/internal/service"
)

type userKey struct{}

func userFrom(r *http.Request) *domain.User {
	u, _ := r.Context().Value(userKey{}).(*domain.User)
	return u
}

// requireAuth validates the bearer token and puts the acting identity on the
// request context.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, service.Unauthorized("Missing bearer token"))
			return
		}

		user, err := auth.ParseToken(h.secret, token)
		if err != nil {
			writeError(w, service.Unauthorized("Invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, user)
		next(w, r.WithContext(ctx))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogRequests emits one structured line per request.
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
