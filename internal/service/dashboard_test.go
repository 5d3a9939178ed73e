package service_test

import (
	"context"
	"testing"

	"eduportal/internal/domain"
	"eduportal/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignmentIDs(assignments []*domain.Assignment) []string {
	out := make([]string, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, a.ID)
	}
	return out
}

func TestDashboard_Student(t *testing.T) {
	f := setup(t)

	d, err := f.dashboardSvc.GetDashboard(studentCtx())
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleStudent, d.Role)
	assert.Nil(t, d.Teacher)
	require.NotNil(t, d.Student)

	assert.Equal(t, []string{"assignment-2"}, assignmentIDs(d.Student.DueSoon))
	assert.Empty(t, d.Student.Overdue)
	require.Len(t, d.Student.RecentlySubmitted, 1)
	assert.Equal(t, "assignment-3", d.Student.RecentlySubmitted[0].ID)
	assert.Equal(t, 92, d.Student.RecentlySubmitted[0].Submission.Grade.Score)
	assert.Equal(t, service.StudentCounts{Active: 2, Submitted: 1, DueSoon: 1}, d.Student.Counts)
}

func TestDashboard_StudentOverdue(t *testing.T) {
	f := setup(t)
	status := domain.AssignmentStatusActive
	_, err := f.assignments.Update(context.Background(), "assignment-3", domain.AssignmentUpdate{Status: &status})
	require.NoError(t, err)
	other := f.addStudent(t, "Sam Lee", "sam@example.com")

	d, err := f.dashboardSvc.GetDashboard(asUser(other.ID, domain.UserRoleStudent))
	require.NoError(t, err)
	assert.Equal(t, []string{"assignment-3"}, assignmentIDs(d.Student.Overdue))
	assert.Empty(t, d.Student.RecentlySubmitted)
	assert.Equal(t, 3, d.Student.Counts.Active)
}

func TestDashboard_Teacher(t *testing.T) {
	f := setup(t)
	f.recordPublishes()

	d, err := f.dashboardSvc.GetDashboard(teacherCtx())
	require.NoError(t, err)
	require.NotNil(t, d.Teacher)
	assert.Empty(t, d.Teacher.PendingSubmissions)
	assert.Equal(t, []string{"assignment-1", "assignment-2"}, assignmentIDs(d.Teacher.UpcomingDeadlines))
	assert.Equal(t, service.TeacherCounts{Assignments: 3, Pending: 0, Upcoming: 2}, d.Teacher.Counts)

	_, err = f.submissionSvc.CreateSubmission(studentCtx(), service.CreateSubmissionInput{
		AssignmentID: "assignment-1", Files: []string{"hooks.zip"},
	})
	require.NoError(t, err)

	d, err = f.dashboardSvc.GetDashboard(teacherCtx())
	require.NoError(t, err)
	assert.Equal(t, 1, d.Teacher.Counts.Pending)
}

func TestDashboard_Unauthenticated(t *testing.T) {
	f := setup(t)
	_, err := f.dashboardSvc.GetDashboard(context.Background())
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}
