package handler

import (
	"context"

	"eduportal/internal/domain"
	"eduportal/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (*service.Session, error)
	Login(ctx context.Context, in service.LoginInput) (*service.Session, error)
	Logout(ctx context.Context, token string) error
	Restore(ctx context.Context, token string) (*domain.User, error)
}

type AssignmentService interface {
	CreateAssignment(ctx context.Context, in service.CreateAssignmentInput) (*domain.Assignment, error)
	GetAssignmentView(ctx context.Context, id string) (*service.AssignmentView, error)
	UpdateAssignment(ctx context.Context, id string, in service.UpdateAssignmentInput) (*domain.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
	ListAssignments(ctx context.Context, tab string) ([]*service.AssignmentView, error)
}

type SubmissionService interface {
	CreateSubmission(ctx context.Context, in service.CreateSubmissionInput) (*domain.Submission, error)
	GetSubmission(ctx context.Context, id string) (*domain.Submission, error)
	ListSubmissions(ctx context.Context) ([]*domain.Submission, error)
	ListSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*domain.Submission, error)
	GradeSubmission(ctx context.Context, id string, in service.GradeInput) (*domain.Submission, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context) (*service.NotificationFeed, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context) (*service.Dashboard, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
