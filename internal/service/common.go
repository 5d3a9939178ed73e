package service

import (
	"context"

	"eduportal/internal/domain"
	"eduportal/internal/events"
	"eduportal/pkg/ctxdata"
	"eduportal/pkg/logging"

	"go.uber.org/zap"
)

func currentUser(ctx context.Context) (string, domain.UserRole, error) {
	userID, ok := ctxdata.GetUserID(ctx)
	if !ok {
		return "", "", ErrUnauthenticated
	}
	role, _ := ctxdata.GetUserRole(ctx)
	return userID, domain.UserRole(role), nil
}

// requireRole returns the caller's id if they act under role.
func requireRole(ctx context.Context, role domain.UserRole) (string, error) {
	userID, userRole, err := currentUser(ctx)
	if err != nil {
		return "", err
	}
	if userRole != role {
		return "", ErrPermissionDenied
	}
	return userID, nil
}

// publish never fails the caller: the store is the source of truth and the bus only mirrors it.
func publish(ctx context.Context, publisher EventPublisher, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to publish event",
			zap.String("event", event.Name),
			zap.String("key", event.Key),
			zap.Error(err),
		)
	}
}

func strPtr(s string) *string {
	return &s
}
