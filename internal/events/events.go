// Package events defines the domain events the portal mirrors onto Kafka and
// the publishers that deliver them.
package events

import (
	"encoding/json"
	"time"

	"eduportal/internal/domain"
)

const (
	AssignmentCreated  = "assignment.created"
	SubmissionCreated  = "submission.created"
	SubmissionGraded   = "submission.graded"
	AssignmentReminder = "assignment.reminder"
)

const (
	TopicAssignments = "assignment-events"
	TopicSubmissions = "submission-events"
	TopicReminders   = "assignment-reminders"
)

// Topics lists every topic the portal writes to.
var Topics = []string{TopicAssignments, TopicSubmissions, TopicReminders}

type Event struct {
	Name       string      `json:"event"`
	Key        string      `json:"-"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// Topic routes an event by name. Unknown names fall back to the assignment topic.
func (e Event) Topic() string {
	switch e.Name {
	case SubmissionCreated, SubmissionGraded:
		return TopicSubmissions
	case AssignmentReminder:
		return TopicReminders
	default:
		return TopicAssignments
	}
}

// Envelope is the consumer-side view of an Event with the payload left undecoded.
type Envelope struct {
	Name       string          `json:"event"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

type AssignmentCreatedPayload struct {
	AssignmentID string    `json:"assignmentId"`
	Title        string    `json:"title"`
	CreatedBy    string    `json:"createdBy"`
	DueDate      time.Time `json:"dueDate"`
	Notified     int       `json:"notified"`
}

type SubmissionCreatedPayload struct {
	SubmissionID string `json:"submissionId"`
	AssignmentID string `json:"assignmentId"`
	StudentID    string `json:"studentId"`
	TeacherID    string `json:"teacherId,omitempty"`
	Files        int    `json:"files"`
}

type SubmissionGradedPayload struct {
	SubmissionID string `json:"submissionId"`
	AssignmentID string `json:"assignmentId"`
	StudentID    string `json:"studentId"`
	Score        int    `json:"score"`
}

type AssignmentReminderPayload struct {
	AssignmentID string    `json:"assignmentId"`
	StudentID    string    `json:"studentId"`
	TeacherID    string    `json:"teacherId"`
	Title        string    `json:"title"`
	DueDate      time.Time `json:"dueDate"`
}

func NewAssignmentCreated(a domain.Assignment, notified int, at time.Time) Event {
	return Event{
		Name:       AssignmentCreated,
		Key:        a.ID,
		OccurredAt: at,
		Payload: AssignmentCreatedPayload{
			AssignmentID: a.ID,
			Title:        a.Title,
			CreatedBy:    a.CreatedBy,
			DueDate:      a.DueDate,
			Notified:     notified,
		},
	}
}

// NewSubmissionCreated builds the event for s; teacherID is empty when the
// assignment could not be resolved.
func NewSubmissionCreated(s domain.Submission, teacherID string, at time.Time) Event {
	return Event{
		Name:       SubmissionCreated,
		Key:        s.ID,
		OccurredAt: at,
		Payload: SubmissionCreatedPayload{
			SubmissionID: s.ID,
			AssignmentID: s.AssignmentID,
			StudentID:    s.StudentID,
			TeacherID:    teacherID,
			Files:        len(s.Files),
		},
	}
}

func NewSubmissionGraded(s domain.Submission, at time.Time) Event {
	payload := SubmissionGradedPayload{
		SubmissionID: s.ID,
		AssignmentID: s.AssignmentID,
		StudentID:    s.StudentID,
	}
	if s.Grade != nil {
		payload.Score = s.Grade.Score
	}
	return Event{Name: SubmissionGraded, Key: s.ID, OccurredAt: at, Payload: payload}
}

func NewAssignmentReminder(a domain.Assignment, studentID string, at time.Time) Event {
	return Event{
		Name:       AssignmentReminder,
		Key:        a.ID + ":" + studentID,
		OccurredAt: at,
		Payload: AssignmentReminderPayload{
			AssignmentID: a.ID,
			StudentID:    studentID,
			TeacherID:    a.CreatedBy,
			Title:        a.Title,
			DueDate:      a.DueDate,
		},
	}
}
