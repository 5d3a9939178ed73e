package service

import (
	"context"

	"eduportal/internal/domain"
	"eduportal/internal/repository"
)

type StudentCounts struct {
	Active    int `json:"active"`
	Submitted int `json:"submitted"`
	DueSoon   int `json:"dueSoon"`
}

type StudentDashboard struct {
	DueSoon           []*domain.Assignment `json:"dueSoon"`
	Overdue           []*domain.Assignment `json:"overdue"`
	RecentlySubmitted []*AssignmentView    `json:"recentlySubmitted"`
	Counts            StudentCounts        `json:"counts"`
}

type TeacherCounts struct {
	Assignments int `json:"assignments"`
	Pending     int `json:"pending"`
	Upcoming    int `json:"upcoming"`
}

type TeacherDashboard struct {
	Assignments        []*domain.Assignment `json:"assignments"`
	PendingSubmissions []*domain.Submission `json:"pendingSubmissions"`
	UpcomingDeadlines  []*domain.Assignment `json:"upcomingDeadlines"`
	Counts             TeacherCounts        `json:"counts"`
}

// Dashboard holds exactly one of the two role dashboards.
type Dashboard struct {
	Role    domain.UserRole   `json:"role"`
	Student *StudentDashboard `json:"student,omitempty"`
	Teacher *TeacherDashboard `json:"teacher,omitempty"`
}

type DashboardService struct {
	assignmentRepo *repository.AssignmentRepository
	submissionRepo *repository.SubmissionRepository
	opts           options
}

func NewDashboardService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	opts ...Option,
) *DashboardService {
	return &DashboardService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		opts:           newOptions(opts),
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	switch role {
	case domain.UserRoleTeacher:
		return &Dashboard{Role: role, Teacher: s.teacherDashboard(ctx, userID)}, nil
	case domain.UserRoleStudent:
		return &Dashboard{Role: role, Student: s.studentDashboard(ctx, userID)}, nil
	default:
		return nil, ErrPermissionDenied
	}
}

func (s *DashboardService) studentDashboard(ctx context.Context, studentID string) *StudentDashboard {
	now := s.opts.now()
	all := s.assignmentRepo.List(ctx)
	mine := s.submissionRepo.ListByStudent(ctx, studentID)
	submitted := submittedSet(mine)

	bySubmission := make(map[string]*domain.Submission, len(mine))
	for _, sub := range mine {
		bySubmission[sub.AssignmentID] = sub
	}

	d := &StudentDashboard{
		DueSoon:           orEmpty(DueSoon(now, all, submitted)),
		Overdue:           orEmpty(Overdue(now, all, submitted)),
		RecentlySubmitted: []*AssignmentView{},
	}
	for _, a := range all {
		switch {
		case submitted[a.ID]:
			d.Counts.Submitted++
			if len(d.RecentlySubmitted) < recentlySubmittedLimit {
				d.RecentlySubmitted = append(d.RecentlySubmitted, &AssignmentView{
					Assignment: a,
					StatusTag:  domain.StatusTagSubmitted,
					Submission: bySubmission[a.ID],
				})
			}
		case a.Status == domain.AssignmentStatusActive:
			d.Counts.Active++
		}
	}
	d.Counts.DueSoon = len(d.DueSoon)
	return d
}

func (s *DashboardService) teacherDashboard(ctx context.Context, teacherID string) *TeacherDashboard {
	now := s.opts.now()
	mine := s.assignmentRepo.ListByTeacher(ctx, teacherID)
	pending := PendingSubmissions(mine, s.submissionRepo.List(ctx))
	if pending == nil {
		pending = []*domain.Submission{}
	}
	upcoming := orEmpty(UpcomingDeadlines(now, mine))

	return &TeacherDashboard{
		Assignments:        mine,
		PendingSubmissions: pending,
		UpcomingDeadlines:  upcoming,
		Counts: TeacherCounts{
			Assignments: len(mine),
			Pending:     len(pending),
			Upcoming:    len(upcoming),
		},
	}
}

func orEmpty(assignments []*domain.Assignment) []*domain.Assignment {
	if assignments == nil {
		return []*domain.Assignment{}
	}
	return assignments
}
