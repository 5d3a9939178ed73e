package handler

import (
	"context"

	"eduportal/internal/domain"
	"eduportal/internal/service"

	"github.com/stretchr/testify/mock"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Register(ctx context.Context, in service.RegisterInput) (*service.Session, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, in service.LoginInput) (*service.Session, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}

func (m *mockAuth) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuth) Restore(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type mockAssignments struct{ mock.Mock }

func (m *mockAssignments) CreateAssignment(ctx context.Context, in service.CreateAssignmentInput) (*domain.Assignment, error) {
	args := m.Called(ctx, in)
	a, _ := args.Get(0).(*domain.Assignment)
	return a, args.Error(1)
}

func (m *mockAssignments) GetAssignmentView(ctx context.Context, id string) (*service.AssignmentView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*service.AssignmentView)
	return v, args.Error(1)
}

func (m *mockAssignments) UpdateAssignment(ctx context.Context, id string, in service.UpdateAssignmentInput) (*domain.Assignment, error) {
	args := m.Called(ctx, id, in)
	a, _ := args.Get(0).(*domain.Assignment)
	return a, args.Error(1)
}

func (m *mockAssignments) DeleteAssignment(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAssignments) ListAssignments(ctx context.Context, tab string) ([]*service.AssignmentView, error) {
	args := m.Called(ctx, tab)
	v, _ := args.Get(0).([]*service.AssignmentView)
	return v, args.Error(1)
}

type mockSubmissions struct{ mock.Mock }

func (m *mockSubmissions) CreateSubmission(ctx context.Context, in service.CreateSubmissionInput) (*domain.Submission, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*domain.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissions) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissions) ListSubmissions(ctx context.Context) ([]*domain.Submission, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]*domain.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissions) ListSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*domain.Submission, error) {
	args := m.Called(ctx, assignmentID)
	s, _ := args.Get(0).([]*domain.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissions) GradeSubmission(ctx context.Context, id string, in service.GradeInput) (*domain.Submission, error) {
	args := m.Called(ctx, id, in)
	s, _ := args.Get(0).(*domain.Submission)
	return s, args.Error(1)
}

type mockNotifications struct{ mock.Mock }

func (m *mockNotifications) ListNotifications(ctx context.Context) (*service.NotificationFeed, error) {
	args := m.Called(ctx)
	f, _ := args.Get(0).(*service.NotificationFeed)
	return f, args.Error(1)
}

func (m *mockNotifications) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*domain.Notification)
	return n, args.Error(1)
}

type mockDashboards struct{ mock.Mock }

func (m *mockDashboards) GetDashboard(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(*service.Dashboard)
	return d, args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}
