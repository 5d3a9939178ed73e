package service

import (
	"context"
	"errors"

	"eduportal/internal/domain"
	"eduportal/internal/repository"
)

// NotificationFeed is a user's notifications, newest first, with the unread count.
type NotificationFeed struct {
	Notifications []*domain.Notification `json:"notifications"`
	Unread        int                    `json:"unread"`
}

type NotificationService struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) ListNotifications(ctx context.Context) (*NotificationFeed, error) {
	userID, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	notifications := s.notificationRepo.ListByUser(ctx, userID)
	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	return &NotificationFeed{
		Notifications: notifications,
		Unread:        UnreadCount(notifications),
	}, nil
}

// MarkRead marks one of the caller's notifications as read. Someone else's
// notification is reported as not found.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	userID, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	if notification.UserID != userID {
		return nil, ErrNotificationNotFound
	}

	notification, err = s.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return notification, nil
}
