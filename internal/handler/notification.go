package handler

import (
	"context"
	"net/http"

	"eduportal/internal/domain"
	"eduportal/internal/service"

	"github.com/go-chi/chi/v5"
)

type NotificationHandler struct {
	notifications NotificationService
}

func NewNotificationHandler(notifications NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/notifications", handle(h.list, false, http.StatusOK))
		r.Post("/notifications/{id}/read", handle(h.markRead, false, http.StatusOK))
	})
}

func (h *NotificationHandler) list(ctx context.Context, _ *http.Request, _ *noBody) (*service.NotificationFeed, error) {
	return h.notifications.ListNotifications(ctx)
}

func (h *NotificationHandler) markRead(ctx context.Context, r *http.Request, _ *noBody) (*domain.Notification, error) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.notifications.MarkRead(ctx, id)
}
