package handler

import (
	"context"
	"net/http"

	"eduportal/internal/domain"
	"eduportal/internal/service"
	"eduportal/pkg/ctxdata"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/register", handle(h.register, true, http.StatusCreated))
	r.Post("/auth/login", handle(h.login, true, http.StatusOK))

	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/auth/logout", handle(h.logout, false, http.StatusNoContent))
		r.Get("/auth/me", handle(h.me, false, http.StatusOK))
	})
}

func (h *AuthHandler) register(ctx context.Context, _ *http.Request, req *service.RegisterInput) (*service.Session, error) {
	return h.auth.Register(ctx, *req)
}

func (h *AuthHandler) login(ctx context.Context, _ *http.Request, req *service.LoginInput) (*service.Session, error) {
	return h.auth.Login(ctx, *req)
}

func (h *AuthHandler) logout(ctx context.Context, _ *http.Request, _ *noBody) (struct{}, error) {
	token, _ := ctxdata.GetSessionToken(ctx)
	return struct{}{}, h.auth.Logout(ctx, token)
}

func (h *AuthHandler) me(ctx context.Context, _ *http.Request, _ *noBody) (*domain.User, error) {
	token, _ := ctxdata.GetSessionToken(ctx)
	return h.auth.Restore(ctx, token)
}
