package service

import (
	"context"

	"eduportal/internal/domain"
	"eduportal/internal/events"
)

// EventPublisher mirrors domain changes onto the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// SessionStore keeps the logged-in user per session token. Get reports an
// unknown or expired token as session.ErrNotFound.
type SessionStore interface {
	Get(ctx context.Context, token string) (*domain.User, error)
	Set(ctx context.Context, token string, user domain.User) error
	Delete(ctx context.Context, token string) error
}
