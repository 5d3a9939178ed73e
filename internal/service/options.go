package service

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type options struct {
	now      func() time.Time
	validate *validator.Validate
}

type Option func(*options)

// WithClock sets the clock used by derived views and grading checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func newOptions(opts []Option) options {
	o := options{
		now:      time.Now,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
