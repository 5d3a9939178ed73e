package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"eduportal/internal/domain"
	"eduportal/internal/events"
	"eduportal/internal/repository"
	"eduportal/internal/service/mocks"
	"eduportal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type workerFixture struct {
	worker      *ReminderWorker
	publisher   *mocks.MockEventPublisher
	users       *repository.UserRepository
	submissions *repository.SubmissionRepository
}

// newWorkerFixture seeds a store at a fixed time. assignment-2 is due in two
// days, so a three day window covers it and nothing else.
func newWorkerFixture(t *testing.T, window time.Duration) *workerFixture {
	t.Helper()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	db := repository.Open(repository.WithClock(clock))
	repository.Seed(db)

	f := &workerFixture{
		publisher:   mocks.NewMockEventPublisher(gomock.NewController(t)),
		users:       repository.NewUserRepository(db),
		submissions: repository.NewSubmissionRepository(db),
	}
	f.worker = NewReminderWorker(
		repository.NewAssignmentRepository(db),
		f.submissions,
		f.users,
		f.publisher,
		logger.NewNop(),
		time.Minute,
		window,
	)
	f.worker.now = clock
	return f
}

func TestReminderWorker_RemindsOncePerStudent(t *testing.T) {
	f := newWorkerFixture(t, 72*time.Hour)

	var got []events.Event
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			got = append(got, e)
			return nil
		}).
		Times(1)

	f.worker.processReminders(context.Background())
	f.worker.processReminders(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, events.AssignmentReminder, got[0].Name)
	assert.Equal(t, "assignment-2:student-1", got[0].Key)
	assert.Equal(t, events.TopicReminders, got[0].Topic())
}

func TestReminderWorker_SkipsSubmittedStudents(t *testing.T) {
	f := newWorkerFixture(t, 72*time.Hour)
	f.submissions.Create(context.Background(), domain.Submission{
		AssignmentID: "assignment-2",
		StudentID:    "student-1",
		Files:        []string{"essay.pdf"},
	})

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	f.worker.processReminders(context.Background())
}

func TestReminderWorker_NewStudentIsReminded(t *testing.T) {
	f := newWorkerFixture(t, 72*time.Hour)

	var keys []string
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			keys = append(keys, e.Key)
			return nil
		}).
		Times(2)

	f.worker.processReminders(context.Background())

	student, err := f.users.Create(context.Background(), domain.User{
		Name:  "Second Student",
		Email: "second@example.com",
		Role:  domain.UserRoleStudent,
	})
	require.NoError(t, err)

	f.worker.processReminders(context.Background())

	assert.Equal(t, []string{"assignment-2:student-1", "assignment-2:" + student.ID}, keys)
}

func TestReminderWorker_RetriesAfterPublishFailure(t *testing.T) {
	f := newWorkerFixture(t, 72*time.Hour)

	gomock.InOrder(
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")),
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
	)

	f.worker.processReminders(context.Background())
	f.worker.processReminders(context.Background())
	f.worker.processReminders(context.Background())
}

func TestReminderWorker_WindowExcludesLaterAssignments(t *testing.T) {
	f := newWorkerFixture(t, 24*time.Hour)

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	f.worker.processReminders(context.Background())
}

func TestReminderWorker_StopsOnCancel(t *testing.T) {
	f := newWorkerFixture(t, 24*time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		f.worker.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
