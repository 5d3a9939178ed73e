// Package repository is the in-memory entity store: four insertion-ordered
// tables owned by one DB value that is created per process (or per test).
package repository

import (
	"errors"
	"sync"
	"time"

	"eduportal/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

const (
	userPrefix         = "user"
	assignmentPrefix   = "assignment"
	submissionPrefix   = "submission"
	notificationPrefix = "notification"
)

type (
	DB struct {
		users         *userTable
		assignments   *assignmentTable
		submissions   *submissionTable
		notifications *notificationTable

		now   func() time.Time
		newID func(prefix string) string
	}

	userTable struct {
		rows  []domain.User
		mutex sync.RWMutex
	}

	assignmentTable struct {
		rows  []domain.Assignment
		mutex sync.RWMutex
	}

	submissionTable struct {
		rows  []domain.Submission
		mutex sync.RWMutex
	}

	notificationTable struct {
		rows  []domain.Notification
		mutex sync.RWMutex
	}
)

type Option func(*DB)

// WithClock replaces the wall clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(db *DB) { db.now = now }
}

// WithIDGenerator replaces the identifier generator.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(db *DB) { db.newID = gen }
}

func Open(opts ...Option) *DB {
	db := &DB{
		users:         &userTable{},
		assignments:   &assignmentTable{},
		submissions:   &submissionTable{},
		notifications: &notificationTable{},
		now:           time.Now,
		newID:         NewID,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// NewID builds "<prefix>-<uuidv7>". UUIDv7 is time ordered and carries 74 random
// bits, so ids minted within the same clock tick do not collide.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}

func (db *DB) Now() time.Time {
	return db.now()
}
