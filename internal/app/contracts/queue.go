package contracts

import "context"

// NotificationEvent is the message published to the notification queue
// whenever an appointment changes state.
type NotificationEvent struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type NotificationPublisher interface {
	Publish(ctx context.Context, event *NotificationEvent) error
}
