package domain

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleStudent || r == UserRoleTeacher
}

func (r UserRole) String() string {
	return string(r)
}

type AssignmentStatus string

const (
	AssignmentStatusActive    AssignmentStatus = "active"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusGraded    AssignmentStatus = "graded"
)

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusActive, AssignmentStatusCompleted, AssignmentStatusGraded:
		return true
	default:
		return false
	}
}

type NotificationType string

const (
	NotificationTypeAssignment   NotificationType = "assignment"
	NotificationTypeSubmission   NotificationType = "submission"
	NotificationTypeGrade        NotificationType = "grade"
	NotificationTypeAnnouncement NotificationType = "announcement"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeAssignment, NotificationTypeSubmission,
		NotificationTypeGrade, NotificationTypeAnnouncement:
		return true
	default:
		return false
	}
}

// DueState is the live classification of an assignment against the clock.
type DueState string

const (
	DueStateActive  DueState = "active"
	DueStatePastDue DueState = "past_due"
)

// StatusTag is what a student sees next to an assignment in their list.
type StatusTag string

const (
	StatusTagSubmitted StatusTag = "Submitted"
	StatusTagPastDue   StatusTag = "Past Due"
	StatusTagActive    StatusTag = "Active"
)
