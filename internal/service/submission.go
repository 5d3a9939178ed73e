package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"eduportal/internal/domain"
	"eduportal/internal/events"
	"eduportal/internal/repository"
	"eduportal/pkg/logging"

	"go.uber.org/zap"
)

type CreateSubmissionInput struct {
	AssignmentID string   `json:"assignmentId" validate:"required"`
	Files        []string `json:"files" validate:"required,min=1,dive,required"`
	Comment      *string  `json:"comment,omitempty"`
}

var createSubmissionRules = []rule{
	{field: "AssignmentID", tag: "required", message: "Assignment is required"},
	{field: "Files", tag: "required", message: "At least one file is required"},
	{field: "Files", tag: "min", message: "At least one file is required"},
	{field: "", tag: "required", message: "File names must not be empty"},
}

type GradeInput struct {
	Score    *int   `json:"score" validate:"required,min=0,max=100"`
	Feedback string `json:"feedback" validate:"required"`
}

var gradeRules = []rule{
	{field: "Score", tag: "required", message: "Score is required"},
	{field: "Score", tag: "min", message: "Score must be a number between 0 and 100"},
	{field: "Score", tag: "max", message: "Score must be a number between 0 and 100"},
	{field: "Feedback", tag: "required", message: "Feedback is required"},
}

type SubmissionService struct {
	submissionRepo   *repository.SubmissionRepository
	assignmentRepo   *repository.AssignmentRepository
	notificationRepo *repository.NotificationRepository
	publisher        EventPublisher
	opts             options

	// submitMu and gradeMu make each check-then-write one step.
	submitMu sync.Mutex
	gradeMu  sync.Mutex
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assignmentRepo *repository.AssignmentRepository,
	notificationRepo *repository.NotificationRepository,
	publisher EventPublisher,
	opts ...Option,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo:   submissionRepo,
		assignmentRepo:   assignmentRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		opts:             newOptions(opts),
	}
}

// CreateSubmission records the calling student's work and tells the
// assignment's teacher about it.
func (s *SubmissionService) CreateSubmission(ctx context.Context, in CreateSubmissionInput) (*domain.Submission, error) {
	studentID, err := requireRole(ctx, domain.UserRoleStudent)
	if err != nil {
		return nil, err
	}

	in.AssignmentID = strings.TrimSpace(in.AssignmentID)
	if err := s.opts.validate.Struct(in); err != nil {
		return nil, firstViolation(err, createSubmissionRules)
	}

	if _, err := s.assignmentRepo.GetByID(ctx, in.AssignmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	submission, err := s.createOnce(ctx, domain.Submission{
		AssignmentID: in.AssignmentID,
		StudentID:    studentID,
		Files:        in.Files,
		Comment:      in.Comment,
	})
	if err != nil {
		return nil, err
	}

	// The assignment may be deleted between the check above and here; the
	// submission stands and nobody is notified.
	var teacherID string
	if assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID); err == nil {
		teacherID = assignment.CreatedBy
		s.notificationRepo.Create(ctx, domain.Notification{
			UserID:  assignment.CreatedBy,
			Message: "New submission for " + assignment.Title,
			Type:    domain.NotificationTypeSubmission,
			LinkTo:  strPtr("/grade-submission/" + submission.ID),
		})
	}

	logging.FromContext(ctx).Info(ctx, "submission created",
		zap.String("submission_id", submission.ID),
		zap.String("assignment_id", submission.AssignmentID),
	)
	publish(ctx, s.publisher, events.NewSubmissionCreated(*submission, teacherID, s.opts.now()))

	return submission, nil
}

func (s *SubmissionService) createOnce(ctx context.Context, submission domain.Submission) (*domain.Submission, error) {
	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	for _, existing := range s.submissionRepo.ListByStudent(ctx, submission.StudentID) {
		if existing.AssignmentID == submission.AssignmentID {
			return nil, ErrAlreadySubmitted
		}
	}
	return s.submissionRepo.Create(ctx, submission), nil
}

// GetSubmission returns any submission to a teacher. A student only sees their
// own; anyone else's is reported as not found.
func (s *SubmissionService) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	if role != domain.UserRoleTeacher && submission.StudentID != userID {
		return nil, ErrSubmissionNotFound
	}
	return submission, nil
}

func (s *SubmissionService) ListSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*domain.Submission, error) {
	if _, err := requireRole(ctx, domain.UserRoleTeacher); err != nil {
		return nil, err
	}
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return s.submissionRepo.ListByAssignment(ctx, assignmentID), nil
}

// ListSubmissions returns a student's own submissions, or a teacher's ungraded queue.
func (s *SubmissionService) ListSubmissions(ctx context.Context) ([]*domain.Submission, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role == domain.UserRoleTeacher {
		return PendingSubmissions(s.assignmentRepo.ListByTeacher(ctx, userID), s.submissionRepo.List(ctx)), nil
	}
	return s.submissionRepo.ListByStudent(ctx, userID), nil
}

// GradeSubmission grades a submission exactly once and notifies its student.
func (s *SubmissionService) GradeSubmission(ctx context.Context, id string, in GradeInput) (*domain.Submission, error) {
	if _, err := requireRole(ctx, domain.UserRoleTeacher); err != nil {
		return nil, err
	}

	in.Feedback = strings.TrimSpace(in.Feedback)
	if err := s.opts.validate.Struct(in); err != nil {
		return nil, firstViolation(err, gradeRules)
	}

	graded, err := s.setGradeOnce(ctx, id, *in.Score, in.Feedback)
	if err != nil {
		return nil, err
	}

	s.notificationRepo.Create(ctx, domain.Notification{
		UserID:  graded.StudentID,
		Message: "Your submission has been graded",
		Type:    domain.NotificationTypeGrade,
		LinkTo:  strPtr("/submissions/" + graded.ID),
	})

	logging.FromContext(ctx).Info(ctx, "submission graded",
		zap.String("submission_id", graded.ID),
		zap.Int("score", graded.Grade.Score),
	)
	publish(ctx, s.publisher, events.NewSubmissionGraded(*graded, s.opts.now()))

	return graded, nil
}

func (s *SubmissionService) setGradeOnce(ctx context.Context, id string, score int, feedback string) (*domain.Submission, error) {
	s.gradeMu.Lock()
	defer s.gradeMu.Unlock()

	existing, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsGraded() {
		return nil, ErrAlreadyGraded
	}

	graded, err := s.submissionRepo.SetGrade(ctx, id, score, feedback)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return graded, nil
}
