package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
)

type ctxKey int

const userKey ctxKey = 0

// UserFrom returns the authenticated identity set by Auth, if any.
func UserFrom(ctx context.Context) (models.RedactedUser, bool) {
	u, ok := ctx.Value(userKey).(models.RedactedUser)
	return u, ok
}

// BearerToken extracts the raw bearer credential, "" when absent or
// malformed.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Auth guards protected routes: the verify func resolves a bearer token
// to a redacted user, anything else is a 401.
func Auth(verify func(ctx context.Context, token string) (models.RedactedUser, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				Error(w, errs.Auth("Missing authorization"))
				return
			}
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				Error(w, errs.Auth("Invalid authorization format"))
				return
			}
			u, err := verify(r.Context(), parts[1])
			if err != nil {
				Error(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: 200}
			start := time.Now()
			next.ServeHTTP(sw, r)
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// Recoverer is the final fallback: panics become a plain InternalError
// response with no internal detail.
func Recoverer(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error().Any("panic", rec).Str("path", r.URL.Path).Msg("unhandled error")
					JSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
