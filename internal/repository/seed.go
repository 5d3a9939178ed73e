package repository

import (
	"time"

	"eduportal/internal/domain"
)

const day = 24 * time.Hour

func strPtr(s string) *string { return &s }

// Seed loads the demo classroom: one teacher, one student, three assignments,
// one graded submission and three notifications, dated relative to the DB clock.
// It is meant for an empty DB and appends unconditionally.
func Seed(db *DB) {
	now := db.now()

	db.users.mutex.Lock()
	db.users.rows = append(db.users.rows,
		domain.User{
			ID:     "teacher-1",
			Name:   "Professor Smith",
			Email:  "teacher@example.com",
			Role:   domain.UserRoleTeacher,
			Avatar: strPtr("https://randomuser.me/api/portraits/men/41.jpg"),
		},
		domain.User{
			ID:     "student-1",
			Name:   "Alex Johnson",
			Email:  "student@example.com",
			Role:   domain.UserRoleStudent,
			Avatar: strPtr("https://randomuser.me/api/portraits/women/42.jpg"),
		},
	)
	db.users.mutex.Unlock()

	db.assignments.mutex.Lock()
	db.assignments.rows = append(db.assignments.rows,
		domain.Assignment{
			ID:          "assignment-1",
			Title:       "Introduction to React Hooks",
			Description: "Create a simple application that demonstrates the use of useState, useEffect, and useContext hooks in React.",
			CreatedBy:   "teacher-1",
			CreatedAt:   now.Add(-5 * day),
			DueDate:     now.Add(7 * day),
			Status:      domain.AssignmentStatusActive,
			Attachments: []string{"React_Hooks_Reference.pdf"},
		},
		domain.Assignment{
			ID:          "assignment-2",
			Title:       "CSS Grid Layout Project",
			Description: "Design a responsive webpage layout using CSS Grid. The layout should adapt to different screen sizes.",
			CreatedBy:   "teacher-1",
			CreatedAt:   now.Add(-10 * day),
			DueDate:     now.Add(2 * day),
			Status:      domain.AssignmentStatusActive,
			Attachments: []string{"CSS_Grid_Guidelines.pdf"},
		},
		domain.Assignment{
			ID:          "assignment-3",
			Title:       "API Integration Exercise",
			Description: "Create a small application that fetches and displays data from a public API of your choice. Implement proper error handling and loading states.",
			CreatedBy:   "teacher-1",
			CreatedAt:   now.Add(-15 * day),
			DueDate:     now.Add(-2 * day),
			Status:      domain.AssignmentStatusCompleted,
			Attachments: []string{"API_Integration_Guide.pdf"},
		},
	)
	db.assignments.mutex.Unlock()

	db.submissions.mutex.Lock()
	db.submissions.rows = append(db.submissions.rows, domain.Submission{
		ID:           "submission-1",
		AssignmentID: "assignment-3",
		StudentID:    "student-1",
		SubmittedAt:  now.Add(-3 * day),
		Files:        []string{"weather_api_solution.zip"},
		Comment:      strPtr("I've implemented a weather application using the OpenWeatherMap API."),
		Grade: &domain.Grade{
			Score:    92,
			Feedback: "Excellent work! The application is well designed and the code is clean. Some improvements could be made to error handling.",
			GradedAt: now.Add(-1 * day),
		},
	})
	db.submissions.mutex.Unlock()

	db.notifications.mutex.Lock()
	db.notifications.rows = append(db.notifications.rows,
		domain.Notification{
			ID:        "notification-1",
			UserID:    "student-1",
			Message:   "New assignment: Introduction to React Hooks",
			Type:      domain.NotificationTypeAssignment,
			CreatedAt: now.Add(-5 * day),
			LinkTo:    strPtr("/assignments/assignment-1"),
		},
		domain.Notification{
			ID:        "notification-2",
			UserID:    "student-1",
			Message:   "Your API Integration Exercise submission has been graded",
			Type:      domain.NotificationTypeGrade,
			CreatedAt: now.Add(-1 * day),
			LinkTo:    strPtr("/submissions/submission-1"),
		},
		domain.Notification{
			ID:        "notification-3",
			UserID:    "teacher-1",
			Message:   "Alex Johnson submitted API Integration Exercise",
			Type:      domain.NotificationTypeSubmission,
			CreatedAt: now.Add(-3 * day),
			LinkTo:    strPtr("/grade-submission/submission-1"),
		},
	)
	db.notifications.mutex.Unlock()
}
