package domain

import (
	"slices"
	"time"
)

type Assignment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatedBy   string           `json:"createdBy"`
	CreatedAt   time.Time        `json:"createdAt"`
	DueDate     time.Time        `json:"dueDate"`
	Status      AssignmentStatus `json:"status"`
	Attachments []string         `json:"attachments,omitempty"`
}

// Clone returns a copy that shares no slices with a.
func (a Assignment) Clone() Assignment {
	a.Attachments = slices.Clone(a.Attachments)
	return a
}

// AssignmentUpdate is a partial update; nil fields are left untouched.
type AssignmentUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *AssignmentStatus
	Attachments []string
}

func (u AssignmentUpdate) Apply(a *Assignment) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.DueDate != nil {
		a.DueDate = *u.DueDate
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Attachments != nil {
		a.Attachments = slices.Clone(u.Attachments)
	}
}

type AssignmentFilter struct {
	CreatedBy string
}
