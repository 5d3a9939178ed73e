package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eduportal/internal/domain"
	"eduportal/internal/events"
	"eduportal/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateAssignment(t *testing.T) {
	t.Run("Success_NotifiesEveryStudent", func(t *testing.T) {
		f := setup(t)
		f.recordPublishes()
		second := f.addStudent(t, "Sam Lee", "sam@example.com")

		due := f.now.Add(48 * time.Hour)
		created, err := f.assignmentSvc.CreateAssignment(teacherCtx(), service.CreateAssignmentInput{
			Title:       "  Essay  ",
			Description: "Write 500 words",
			DueDate:     due,
			Attachments: []string{"brief.pdf"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Essay", created.Title)
		assert.Equal(t, "teacher-1", created.CreatedBy)
		assert.Equal(t, domain.AssignmentStatusActive, created.Status)
		assert.Equal(t, f.now, created.CreatedAt)

		got, err := f.assignmentSvc.GetAssignment(teacherCtx(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		for _, studentID := range []string{"student-1", second.ID} {
			var mine []*domain.Notification
			for _, n := range f.notificationsOfType(studentID, domain.NotificationTypeAssignment) {
				if n.LinkTo != nil && *n.LinkTo == "/assignments/"+created.ID {
					mine = append(mine, n)
				}
			}
			require.Len(t, mine, 1, studentID)
			assert.Equal(t, "New assignment: Essay", mine[0].Message)
			assert.False(t, mine[0].Read)
		}
		assert.Empty(t, f.notificationsOfType("teacher-1", domain.NotificationTypeAssignment))

		require.Len(t, f.published, 1)
		assert.Equal(t, events.AssignmentCreated, f.published[0].Name)
		assert.Equal(t, created.ID, f.published[0].Key)
		payload, ok := f.published[0].Payload.(events.AssignmentCreatedPayload)
		require.True(t, ok)
		assert.Equal(t, 2, payload.Notified)
	})

	t.Run("Success_PublishFailureIsIgnored", func(t *testing.T) {
		f := setup(t)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		created, err := f.assignmentSvc.CreateAssignment(teacherCtx(), service.CreateAssignmentInput{
			Title: "T", Description: "D", DueDate: f.now.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Error_Validation", func(t *testing.T) {
		f := setup(t)
		due := f.now.Add(time.Hour)

		testCases := []struct {
			name    string
			input   service.CreateAssignmentInput
			message string
		}{
			{"MissingTitle", service.CreateAssignmentInput{Title: "   ", Description: "D", DueDate: due}, "Title is required"},
			{"MissingDescription", service.CreateAssignmentInput{Title: "T", DueDate: due}, "Description is required"},
			{"MissingDueDate", service.CreateAssignmentInput{Title: "T", Description: "D"}, "Due date is required"},
			{"AllMissing", service.CreateAssignmentInput{}, "Title is required"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.assignmentSvc.CreateAssignment(teacherCtx(), tc.input)
				require.ErrorIs(t, err, service.ErrInvalidArgument)
				var verr *service.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.message, verr.Message)
			})
		}
	})

	t.Run("Error_StudentCannotCreate", func(t *testing.T) {
		f := setup(t)
		before := len(f.assignments.List(context.Background()))

		_, err := f.assignmentSvc.CreateAssignment(studentCtx(), service.CreateAssignmentInput{
			Title: "T", Description: "D", DueDate: f.now.Add(time.Hour),
		})
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
		assert.Len(t, f.assignments.List(context.Background()), before)
	})

	t.Run("Error_Unauthenticated", func(t *testing.T) {
		f := setup(t)
		_, err := f.assignmentSvc.CreateAssignment(context.Background(), service.CreateAssignmentInput{})
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("Error_UnknownTeacher", func(t *testing.T) {
		f := setup(t)
		_, err := f.assignmentSvc.CreateAssignment(asUser("teacher-404", domain.UserRoleTeacher), service.CreateAssignmentInput{
			Title: "T", Description: "D", DueDate: f.now.Add(time.Hour),
		})
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestGetAssignmentView(t *testing.T) {
	f := setup(t)

	view, err := f.assignmentSvc.GetAssignmentView(studentCtx(), "assignment-3")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTagSubmitted, view.StatusTag)
	require.NotNil(t, view.Submission)
	assert.Equal(t, "submission-1", view.Submission.ID)

	view, err = f.assignmentSvc.GetAssignmentView(studentCtx(), "assignment-2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTagActive, view.StatusTag)
	assert.Nil(t, view.Submission)

	view, err = f.assignmentSvc.GetAssignmentView(teacherCtx(), "assignment-2")
	require.NoError(t, err)
	assert.Empty(t, view.StatusTag)

	_, err = f.assignmentSvc.GetAssignmentView(studentCtx(), "assignment-404")
	assert.ErrorIs(t, err, service.ErrAssignmentNotFound)
}

func TestUpdateAssignment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := setup(t)
		status := domain.AssignmentStatusCompleted
		due := f.now.Add(10 * 24 * time.Hour)

		updated, err := f.assignmentSvc.UpdateAssignment(teacherCtx(), "assignment-1", service.UpdateAssignmentInput{
			Title:   strPtr("React Hooks II"),
			DueDate: &due,
			Status:  &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "React Hooks II", updated.Title)
		assert.Equal(t, due, updated.DueDate)
		assert.Equal(t, status, updated.Status)
		assert.Equal(t, "teacher-1", updated.CreatedBy)
		assert.Equal(t, []string{"React_Hooks_Reference.pdf"}, updated.Attachments)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		f := setup(t)
		_, err := f.assignmentSvc.UpdateAssignment(teacherCtx(), "assignment-404", service.UpdateAssignmentInput{Title: strPtr("x")})
		assert.ErrorIs(t, err, service.ErrAssignmentNotFound)
	})

	t.Run("Error_BlankTitle", func(t *testing.T) {
		f := setup(t)
		_, err := f.assignmentSvc.UpdateAssignment(teacherCtx(), "assignment-1", service.UpdateAssignmentInput{Title: strPtr(" ")})
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
		assert.EqualError(t, err, "Title is required")
	})

	t.Run("Error_UnknownStatus", func(t *testing.T) {
		f := setup(t)
		status := domain.AssignmentStatus("archived")
		_, err := f.assignmentSvc.UpdateAssignment(teacherCtx(), "assignment-1", service.UpdateAssignmentInput{Status: &status})
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("Error_Student", func(t *testing.T) {
		f := setup(t)
		_, err := f.assignmentSvc.UpdateAssignment(studentCtx(), "assignment-1", service.UpdateAssignmentInput{Title: strPtr("x")})
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})
}

func TestDeleteAssignment(t *testing.T) {
	f := setup(t)
	ctx := teacherCtx()

	err := f.assignmentSvc.DeleteAssignment(ctx, "assignment-404")
	assert.ErrorIs(t, err, service.ErrAssignmentNotFound)
	assert.Len(t, f.assignments.List(ctx), 3)

	assert.ErrorIs(t, f.assignmentSvc.DeleteAssignment(studentCtx(), "assignment-1"), service.ErrPermissionDenied)

	require.NoError(t, f.assignmentSvc.DeleteAssignment(ctx, "assignment-1"))
	_, err = f.assignmentSvc.GetAssignment(ctx, "assignment-1")
	assert.ErrorIs(t, err, service.ErrAssignmentNotFound)
	assert.Len(t, f.assignments.List(ctx), 2)
}

func TestListAssignments(t *testing.T) {
	ids := func(views []*service.AssignmentView) []string {
		out := make([]string, 0, len(views))
		for _, v := range views {
			out = append(out, v.ID)
		}
		return out
	}

	t.Run("StudentTabs", func(t *testing.T) {
		f := setup(t)

		testCases := []struct {
			tab string
			ids []string
		}{
			{"", []string{"assignment-1", "assignment-2"}},
			{service.TabActive, []string{"assignment-1", "assignment-2"}},
			{service.TabSubmitted, []string{"assignment-3"}},
			{service.TabPastDue, []string{}},
		}
		for _, tc := range testCases {
			t.Run(tc.tab, func(t *testing.T) {
				views, err := f.assignmentSvc.ListAssignments(studentCtx(), tc.tab)
				require.NoError(t, err)
				assert.Equal(t, tc.ids, ids(views))
			})
		}
	})

	t.Run("StudentPastDueWithoutSubmission", func(t *testing.T) {
		f := setup(t)
		other := f.addStudent(t, "Sam Lee", "sam@example.com")

		views, err := f.assignmentSvc.ListAssignments(asUser(other.ID, domain.UserRoleStudent), service.TabPastDue)
		require.NoError(t, err)
		require.Equal(t, []string{"assignment-3"}, ids(views))
		assert.Equal(t, domain.StatusTagPastDue, views[0].StatusTag)
	})

	t.Run("TeacherSeesOwnOnly", func(t *testing.T) {
		f := setup(t)
		views, err := f.assignmentSvc.ListAssignments(teacherCtx(), service.TabPastDue)
		require.NoError(t, err)
		assert.Equal(t, []string{"assignment-1", "assignment-2", "assignment-3"}, ids(views))

		views, err = f.assignmentSvc.ListAssignments(asUser("teacher-2", domain.UserRoleTeacher), "")
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("Error_UnknownTab", func(t *testing.T) {
		f := setup(t)
		_, err := f.assignmentSvc.ListAssignments(studentCtx(), "archived")
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})
}
