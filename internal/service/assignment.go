package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"eduportal/internal/domain"
	"eduportal/internal/events"
	"eduportal/internal/repository"
	"eduportal/pkg/logging"

	"go.uber.org/zap"
)

type CreateAssignmentInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	Attachments []string  `json:"attachments"`
}

var createAssignmentRules = []rule{
	{field: "Title", tag: "required", message: "Title is required"},
	{field: "Description", tag: "required", message: "Description is required"},
	{field: "DueDate", tag: "required", message: "Due date is required"},
}

// UpdateAssignmentInput is a partial update; absent fields keep their value.
type UpdateAssignmentInput struct {
	Title       *string                  `json:"title,omitempty"`
	Description *string                  `json:"description,omitempty"`
	DueDate     *time.Time               `json:"dueDate,omitempty"`
	Status      *domain.AssignmentStatus `json:"status,omitempty"`
	Attachments []string                 `json:"attachments,omitempty"`
}

// AssignmentView is an assignment as a particular student sees it.
type AssignmentView struct {
	*domain.Assignment
	StatusTag  domain.StatusTag   `json:"statusTag,omitempty"`
	Submission *domain.Submission `json:"submission,omitempty"`
}

type AssignmentService struct {
	assignmentRepo   *repository.AssignmentRepository
	submissionRepo   *repository.SubmissionRepository
	userRepo         *repository.UserRepository
	notificationRepo *repository.NotificationRepository
	publisher        EventPublisher
	opts             options
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
	publisher EventPublisher,
	opts ...Option,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo:   assignmentRepo,
		submissionRepo:   submissionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		opts:             newOptions(opts),
	}
}

// CreateAssignment stores a new active assignment owned by the calling teacher
// and notifies every student about it.
func (s *AssignmentService) CreateAssignment(ctx context.Context, in CreateAssignmentInput) (*domain.Assignment, error) {
	teacherID, err := requireRole(ctx, domain.UserRoleTeacher)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := s.opts.validate.Struct(in); err != nil {
		return nil, firstViolation(err, createAssignmentRules)
	}

	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !teacher.IsTeacher() {
		return nil, ErrPermissionDenied
	}

	assignment := s.assignmentRepo.Create(ctx, domain.Assignment{
		Title:       in.Title,
		Description: in.Description,
		CreatedBy:   teacher.ID,
		DueDate:     in.DueDate,
		Status:      domain.AssignmentStatusActive,
		Attachments: in.Attachments,
	})

	notified, err := s.notifyStudents(ctx, assignment)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info(ctx, "assignment created",
		zap.String("assignment_id", assignment.ID),
		zap.Int("notified", notified),
	)
	publish(ctx, s.publisher, events.NewAssignmentCreated(*assignment, notified, s.opts.now()))

	return assignment, nil
}

func (s *AssignmentService) notifyStudents(ctx context.Context, assignment *domain.Assignment) (int, error) {
	students, err := s.userRepo.ListByRole(ctx, domain.UserRoleStudent)
	if err != nil {
		return 0, err
	}
	for _, student := range students {
		s.notificationRepo.Create(ctx, domain.Notification{
			UserID:  student.ID,
			Message: "New assignment: " + assignment.Title,
			Type:    domain.NotificationTypeAssignment,
			LinkTo:  strPtr("/assignments/" + assignment.ID),
		})
	}
	return len(students), nil
}

func (s *AssignmentService) GetAssignment(ctx context.Context, id string) (*domain.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

// GetAssignmentView adds the caller's own submission and status tag when the
// caller is a student.
func (s *AssignmentService) GetAssignmentView(ctx context.Context, id string) (*AssignmentView, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	assignment, err := s.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &AssignmentView{Assignment: assignment}
	if role != domain.UserRoleStudent {
		return view, nil
	}
	for _, sub := range s.submissionRepo.ListByStudent(ctx, userID) {
		if sub.AssignmentID == assignment.ID {
			view.Submission = sub
			break
		}
	}
	view.StatusTag = SubmissionStatusTag(s.opts.now(), *assignment, view.Submission != nil)
	return view, nil
}

func (s *AssignmentService) UpdateAssignment(ctx context.Context, id string, in UpdateAssignmentInput) (*domain.Assignment, error) {
	if _, err := requireRole(ctx, domain.UserRoleTeacher); err != nil {
		return nil, err
	}

	upd := domain.AssignmentUpdate{
		DueDate:     in.DueDate,
		Status:      in.Status,
		Attachments: in.Attachments,
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalid("Title is required")
		}
		upd.Title = &title
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, invalid("Description is required")
		}
		upd.Description = &description
	}
	if in.DueDate != nil && in.DueDate.IsZero() {
		return nil, invalid("Due date is required")
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, invalid("Unknown status %q", *in.Status)
	}

	assignment, err := s.assignmentRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) DeleteAssignment(ctx context.Context, id string) error {
	if _, err := requireRole(ctx, domain.UserRoleTeacher); err != nil {
		return err
	}
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}
	return nil
}

// ListAssignments returns a teacher's own assignments, or for a student every
// assignment in the requested tab.
func (s *AssignmentService) ListAssignments(ctx context.Context, tab string) ([]*AssignmentView, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if role == domain.UserRoleTeacher {
		assignments := s.assignmentRepo.ListByTeacher(ctx, userID)
		views := make([]*AssignmentView, 0, len(assignments))
		for _, a := range assignments {
			views = append(views, &AssignmentView{Assignment: a})
		}
		return views, nil
	}

	now := s.opts.now()
	mine := s.submissionRepo.ListByStudent(ctx, userID)
	submitted := submittedSet(mine)

	assignments, err := FilterTab(now, tab, s.assignmentRepo.List(ctx), submitted)
	if err != nil {
		return nil, err
	}

	views := make([]*AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		view := &AssignmentView{
			Assignment: a,
			StatusTag:  SubmissionStatusTag(now, *a, submitted[a.ID]),
		}
		for _, sub := range mine {
			if sub.AssignmentID == a.ID {
				view.Submission = sub
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}
