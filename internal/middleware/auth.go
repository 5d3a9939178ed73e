package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"eduportal/internal/domain"
	"eduportal/internal/service"
	"eduportal/pkg/ctxdata"
	"eduportal/pkg/logging"

	"go.uber.org/zap"
)

const SessionHeader = "X-Session-Token"

type SessionRestorer interface {
	Restore(ctx context.Context, token string) (*domain.User, error)
}

// NewAuthMiddleware resolves the session token header to a user and stores the
// user's id and role in the request context. Requests without a live session
// get 401.
func NewAuthMiddleware(sessions SessionRestorer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := r.Header.Get(SessionHeader)
			if token == "" {
				logging.FromContext(ctx).Info(ctx, "no session token", zap.String("path", r.URL.Path))
				unauthorized(w)
				return
			}

			user, err := sessions.Restore(ctx, token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					logging.FromContext(ctx).Info(ctx, "unknown session", zap.String("path", r.URL.Path))
					unauthorized(w)
					return
				}
				logging.FromContext(ctx).Error(ctx, "failed to restore session",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.Error(err),
				)
				writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				return
			}

			ctx = ctxdata.WithUser(ctx, user.ID, user.Role.String())
			ctx = ctxdata.WithSessionToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Please log in to continue")
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}
