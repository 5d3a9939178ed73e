package domain

import "time"

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	LinkTo    *string          `json:"linkTo,omitempty"`
}

func (n Notification) Clone() Notification {
	if n.LinkTo != nil {
		link := *n.LinkTo
		n.LinkTo = &link
	}
	return n
}
