package repository

import (
	"context"
	"slices"
	"time"

	"eduportal/internal/domain"
)

type SubmissionRepository struct {
	db    *submissionTable
	now   func() time.Time
	newID func(string) string
}

func NewSubmissionRepository(db *DB) *SubmissionRepository {
	return &SubmissionRepository{db: db.submissions, now: db.now, newID: db.newID}
}

// Create assigns id and submission time. Any grade on the input is dropped.
func (r *SubmissionRepository) Create(ctx context.Context, submission domain.Submission) *domain.Submission {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	submission = submission.Clone()
	submission.ID = r.newID(submissionPrefix)
	submission.SubmittedAt = r.now()
	submission.Grade = nil
	r.db.rows = append(r.db.rows, submission)

	created := submission.Clone()
	return &created
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	idx := r.index(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	submission := r.db.rows[idx].Clone()
	return &submission, nil
}

func (r *SubmissionRepository) List(ctx context.Context) []*domain.Submission {
	return r.filter(func(domain.Submission) bool { return true })
}

func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID string) []*domain.Submission {
	return r.filter(func(s domain.Submission) bool { return s.AssignmentID == assignmentID })
}

func (r *SubmissionRepository) ListByStudent(ctx context.Context, studentID string) []*domain.Submission {
	return r.filter(func(s domain.Submission) bool { return s.StudentID == studentID })
}

// SetGrade attaches a grade stamped with the current time. An existing grade is
// overwritten; callers that want grade-once semantics must check first.
func (r *SubmissionRepository) SetGrade(ctx context.Context, id string, score int, feedback string) (*domain.Submission, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	idx := r.index(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	r.db.rows[idx].Grade = &domain.Grade{
		Score:    score,
		Feedback: feedback,
		GradedAt: r.now(),
	}

	graded := r.db.rows[idx].Clone()
	return &graded, nil
}

func (r *SubmissionRepository) filter(keep func(domain.Submission) bool) []*domain.Submission {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	var submissions []*domain.Submission
	for _, row := range r.db.rows {
		if keep(row) {
			submission := row.Clone()
			submissions = append(submissions, &submission)
		}
	}
	return submissions
}

func (r *SubmissionRepository) index(id string) int {
	return slices.IndexFunc(r.db.rows, func(s domain.Submission) bool { return s.ID == id })
}
