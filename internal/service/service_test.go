package service_test

import (
	"context"
	"testing"
	"time"

	"eduportal/internal/domain"
	"eduportal/internal/events"
	"eduportal/internal/repository"
	"eduportal/internal/service"
	"eduportal/internal/service/mocks"
	"eduportal/pkg/ctxdata"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	now time.Time

	users         *repository.UserRepository
	assignments   *repository.AssignmentRepository
	submissions   *repository.SubmissionRepository
	notifications *repository.NotificationRepository

	publisher *mocks.MockEventPublisher
	published []events.Event

	assignmentSvc   *service.AssignmentService
	submissionSvc   *service.SubmissionService
	notificationSvc *service.NotificationService
	dashboardSvc    *service.DashboardService
}

// setup builds the services over a seeded store whose clock reads f.now.
func setup(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	clock := func() time.Time { return f.now }

	db := repository.Open(repository.WithClock(clock))
	repository.Seed(db)

	f.users = repository.NewUserRepository(db)
	f.assignments = repository.NewAssignmentRepository(db)
	f.submissions = repository.NewSubmissionRepository(db)
	f.notifications = repository.NewNotificationRepository(db)
	f.publisher = mocks.NewMockEventPublisher(ctrl)

	f.assignmentSvc = service.NewAssignmentService(f.assignments, f.submissions, f.users, f.notifications, f.publisher, service.WithClock(clock))
	f.submissionSvc = service.NewSubmissionService(f.submissions, f.assignments, f.notifications, f.publisher, service.WithClock(clock))
	f.notificationSvc = service.NewNotificationService(f.notifications)
	f.dashboardSvc = service.NewDashboardService(f.assignments, f.submissions, service.WithClock(clock))
	return f
}

// recordPublishes accepts any number of events and keeps them in f.published.
func (f *fixture) recordPublishes() {
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			f.published = append(f.published, e)
			return nil
		}).
		AnyTimes()
}

func (f *fixture) addStudent(t *testing.T, name, email string) *domain.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), domain.User{Name: name, Email: email, Role: domain.UserRoleStudent})
	require.NoError(t, err)
	return user
}

func (f *fixture) notificationsOfType(userID string, typ domain.NotificationType) []*domain.Notification {
	var out []*domain.Notification
	for _, n := range f.notifications.ListByUser(context.Background(), userID) {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func asUser(id string, role domain.UserRole) context.Context {
	return ctxdata.WithUser(context.Background(), id, role.String())
}

func teacherCtx() context.Context {
	return asUser("teacher-1", domain.UserRoleTeacher)
}

func studentCtx() context.Context {
	return asUser("student-1", domain.UserRoleStudent)
}

func intPtr(v int) *int {
	return &v
}

func strPtr(s string) *string {
	return &s
}
