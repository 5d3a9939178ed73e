package service

import (
	"time"

	"eduportal/internal/domain"
)

const (
	dueSoonWindow  = 3 * 24 * time.Hour
	upcomingWindow = 7 * 24 * time.Hour

	recentlySubmittedLimit = 4
)

// Student assignment tabs.
const (
	TabActive    = "active"
	TabSubmitted = "submitted"
	TabPastDue   = "past_due"
)

// ClassifyDue reports past_due once the due date is no longer in the future.
func ClassifyDue(now, due time.Time) domain.DueState {
	if due.After(now) {
		return domain.DueStateActive
	}
	return domain.DueStatePastDue
}

// SubmissionStatusTag is the label a student sees next to an assignment.
func SubmissionStatusTag(now time.Time, a domain.Assignment, submitted bool) domain.StatusTag {
	switch {
	case submitted:
		return domain.StatusTagSubmitted
	case ClassifyDue(now, a.DueDate) == domain.DueStatePastDue:
		return domain.StatusTagPastDue
	default:
		return domain.StatusTagActive
	}
}

// DueWithin reports whether due lies in (now, now+window].
func DueWithin(now, due time.Time, window time.Duration) bool {
	diff := due.Sub(now)
	return diff > 0 && diff <= window
}

// DueSoon keeps active, unsubmitted assignments due within the next three days.
func DueSoon(now time.Time, assignments []*domain.Assignment, submitted map[string]bool) []*domain.Assignment {
	var out []*domain.Assignment
	for _, a := range assignments {
		if a.Status == domain.AssignmentStatusActive && !submitted[a.ID] && DueWithin(now, a.DueDate, dueSoonWindow) {
			out = append(out, a)
		}
	}
	return out
}

// Overdue keeps active, unsubmitted assignments whose due date has passed.
func Overdue(now time.Time, assignments []*domain.Assignment, submitted map[string]bool) []*domain.Assignment {
	var out []*domain.Assignment
	for _, a := range assignments {
		if a.Status == domain.AssignmentStatusActive && !submitted[a.ID] && a.DueDate.Before(now) {
			out = append(out, a)
		}
	}
	return out
}

// UpcomingDeadlines keeps assignments due within the next seven days, regardless of status.
func UpcomingDeadlines(now time.Time, assignments []*domain.Assignment) []*domain.Assignment {
	var out []*domain.Assignment
	for _, a := range assignments {
		if DueWithin(now, a.DueDate, upcomingWindow) {
			out = append(out, a)
		}
	}
	return out
}

// PendingSubmissions keeps ungraded submissions that belong to one of assignments.
func PendingSubmissions(assignments []*domain.Assignment, submissions []*domain.Submission) []*domain.Submission {
	owned := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		owned[a.ID] = true
	}
	var out []*domain.Submission
	for _, s := range submissions {
		if !s.IsGraded() && owned[s.AssignmentID] {
			out = append(out, s)
		}
	}
	return out
}

// FilterTab applies a student tab. An empty tab means active.
func FilterTab(now time.Time, tab string, assignments []*domain.Assignment, submitted map[string]bool) ([]*domain.Assignment, error) {
	var keep func(a *domain.Assignment) bool
	switch tab {
	case "", TabActive:
		keep = func(a *domain.Assignment) bool { return a.DueDate.After(now) }
	case TabSubmitted:
		keep = func(a *domain.Assignment) bool { return submitted[a.ID] }
	case TabPastDue:
		keep = func(a *domain.Assignment) bool { return !submitted[a.ID] && !a.DueDate.After(now) }
	default:
		return nil, invalid("Unknown tab %q", tab)
	}

	var out []*domain.Assignment
	for _, a := range assignments {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// UnreadCount counts notifications that have not been read.
func UnreadCount(notifications []*domain.Notification) int {
	n := 0
	for _, notification := range notifications {
		if !notification.Read {
			n++
		}
	}
	return n
}

func submittedSet(submissions []*domain.Submission) map[string]bool {
	set := make(map[string]bool, len(submissions))
	for _, s := range submissions {
		set[s.AssignmentID] = true
	}
	return set
}
