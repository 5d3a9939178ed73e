package repository

import (
	"context"
	"slices"
	"sort"
	"time"

	"eduportal/internal/domain"
)

type NotificationRepository struct {
	db    *notificationTable
	now   func() time.Time
	newID func(string) string
}

func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db.notifications, now: db.now, newID: db.newID}
}

// Create stores an unread notification stamped with the current time.
func (r *NotificationRepository) Create(ctx context.Context, n domain.Notification) *domain.Notification {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	n = n.Clone()
	n.ID = r.newID(notificationPrefix)
	n.Read = false
	n.CreatedAt = r.now()
	r.db.rows = append(r.db.rows, n)

	created := n.Clone()
	return &created
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	idx := r.index(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	n := r.db.rows[idx].Clone()
	return &n, nil
}

// ListByUser returns the user's notifications newest first. Notifications
// created at the same instant keep their insertion order.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) []*domain.Notification {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	var notifications []*domain.Notification
	for _, row := range r.db.rows {
		if row.UserID == userID {
			n := row.Clone()
			notifications = append(notifications, &n)
		}
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications
}

// MarkRead flips the read flag of exactly one notification. Reading twice is a no-op.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	idx := r.index(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	r.db.rows[idx].Read = true

	n := r.db.rows[idx].Clone()
	return &n, nil
}

func (r *NotificationRepository) index(id string) int {
	return slices.IndexFunc(r.db.rows, func(n domain.Notification) bool { return n.ID == id })
}
