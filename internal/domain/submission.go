package domain

import (
	"slices"
	"time"
)

type Grade struct {
	Score    int       `json:"score"`
	Feedback string    `json:"feedback"`
	GradedAt time.Time `json:"gradedAt"`
}

type Submission struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	StudentID    string    `json:"studentId"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Files        []string  `json:"files"`
	Comment      *string   `json:"comment,omitempty"`
	Grade        *Grade    `json:"grade,omitempty"`
}

func (s Submission) IsGraded() bool {
	return s.Grade != nil
}

func (s Submission) Clone() Submission {
	s.Files = slices.Clone(s.Files)
	if s.Comment != nil {
		comment := *s.Comment
		s.Comment = &comment
	}
	if s.Grade != nil {
		grade := *s.Grade
		s.Grade = &grade
	}
	return s
}
