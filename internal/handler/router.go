package handler

import (
	"net/http"

	"eduportal/internal/middleware"
	"eduportal/pkg/logging"

	"github.com/go-chi/chi/v5"
)

type Services struct {
	Auth          AuthService
	Assignments   AssignmentService
	Submissions   SubmissionService
	Notifications NotificationService
	Dashboards    DashboardService
	Users         UserService
}

// NewRouter mounts every route. Everything except registration, login and
// the health probe requires a session.
func NewRouter(logger *logging.Logger, svc Services) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	authMiddleware := middleware.NewAuthMiddleware(svc.Auth)

	NewAuthHandler(svc.Auth).RegisterRoutes(r, authMiddleware)
	NewAssignmentHandler(svc.Assignments, svc.Submissions).RegisterRoutes(r, authMiddleware)
	NewSubmissionHandler(svc.Submissions).RegisterRoutes(r, authMiddleware)
	NewNotificationHandler(svc.Notifications).RegisterRoutes(r, authMiddleware)
	NewUserHandler(svc.Users, svc.Dashboards).RegisterRoutes(r, authMiddleware)

	return r
}
