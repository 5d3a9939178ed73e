package handler

import (
	"context"
	"net/http"

	"eduportal/internal/domain"
	"eduportal/internal/service"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	users      UserService
	dashboards DashboardService
}

func NewUserHandler(users UserService, dashboards DashboardService) *UserHandler {
	return &UserHandler{users: users, dashboards: dashboards}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/dashboard", handle(h.dashboard, false, http.StatusOK))
		r.Get("/users/{id}", handle(h.get, false, http.StatusOK))
	})
}

func (h *UserHandler) dashboard(ctx context.Context, _ *http.Request, _ *noBody) (*service.Dashboard, error) {
	return h.dashboards.GetDashboard(ctx)
}

func (h *UserHandler) get(ctx context.Context, r *http.Request, _ *noBody) (*domain.User, error) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.users.GetUser(ctx, id)
}
