package main

import (
	"context"
	"time"

	"eduportal/internal/domain"
	"eduportal/internal/events"
	"eduportal/internal/repository"
	"eduportal/internal/service"
	"eduportal/pkg/logger"
)

// ReminderWorker publishes an assignment reminder to every student who has
// not yet submitted an active assignment that is due within the window.
// A student is reminded about an assignment at most once per process.
type ReminderWorker struct {
	assignmentRepo *repository.AssignmentRepository
	submissionRepo *repository.SubmissionRepository
	userRepo       *repository.UserRepository
	publisher      service.EventPublisher
	logger         *logger.Logger
	interval       time.Duration
	window         time.Duration
	now            func() time.Time

	// only touched from the worker goroutine
	sent map[string]struct{}
}

func NewReminderWorker(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
	publisher service.EventPublisher,
	logger *logger.Logger,
	interval, window time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		publisher:      publisher,
		logger:         logger,
		interval:       interval,
		window:         window,
		now:            time.Now,
		sent:           make(map[string]struct{}),
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			w.processReminders(ctx)
		}
	}
}

func (w *ReminderWorker) processReminders(ctx context.Context) {
	now := w.now()

	students, err := w.userRepo.ListByRole(ctx, domain.UserRoleStudent)
	if err != nil {
		w.logger.Errorf("Failed to list students: %v", err)
		return
	}

	for _, assignment := range w.dueSoon(ctx, now) {
		submitted := make(map[string]bool)
		for _, s := range w.submissionRepo.ListByAssignment(ctx, assignment.ID) {
			submitted[s.StudentID] = true
		}

		for _, student := range students {
			if submitted[student.ID] {
				continue
			}
			event := events.NewAssignmentReminder(*assignment, student.ID, now)
			if _, ok := w.sent[event.Key]; ok {
				continue
			}

			if err := w.publisher.Publish(ctx, event); err != nil {
				w.logger.Errorf("Failed to send reminder for assignment %s to %s: %v", assignment.ID, student.ID, err)
				continue
			}

			w.sent[event.Key] = struct{}{}
			w.logger.Infof("Sent reminder for assignment %s to %s", assignment.ID, student.ID)
		}
	}
}

func (w *ReminderWorker) dueSoon(ctx context.Context, now time.Time) []*domain.Assignment {
	var due []*domain.Assignment
	for _, a := range w.assignmentRepo.List(ctx) {
		if a.Status != domain.AssignmentStatusActive {
			continue
		}
		if service.DueWithin(now, a.DueDate, w.window) {
			due = append(due, a)
		}
	}
	return due
}
