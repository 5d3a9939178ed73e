package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPermissionDenied     = errors.New("permission denied")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailInUse           = errors.New("email already in use")
	ErrUserNotFound         = errors.New("user not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadySubmitted     = errors.New("assignment already submitted")
	ErrAlreadyGraded        = errors.New("submission already graded")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// ValidationError carries a message that can be shown to the user as is.
// It matches ErrInvalidArgument under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// rule maps a failed validator tag to a message. An empty field matches any field.
type rule struct {
	field   string
	tag     string
	message string
}

// firstViolation picks the message of the first rule hit by err, so the order of
// rules decides which problem the user hears about first.
func firstViolation(err error, rules []rule) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	for _, r := range rules {
		for _, fe := range verrs {
			if (r.field == "" || r.field == fe.StructField()) && r.tag == fe.Tag() {
				return &ValidationError{Message: r.message}
			}
		}
	}
	fe := verrs[0]
	return invalid("%s is invalid", fe.StructField())
}
