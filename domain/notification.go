package domain

import "errors"

var ErrNoNotification = errors.New("push message has no notification")

type NotificationOptions struct {
	Body string `json:"body"`
	Icon string `json:"icon"`
}

type NotificationRequest struct {
	Title   string              `json:"title"`
	Options NotificationOptions `json:"options"`
}

// NewNotificationRequest derives the request shown to the user from a push message.
// Empty title and body are passed through as is.
func NewNotificationRequest(msg PushMessage, icon string) (NotificationRequest, error) {
	if msg.Notification == nil {
		return NotificationRequest{}, ErrNoNotification
	}
	return NotificationRequest{
		Title: msg.Notification.Title,
		Options: NotificationOptions{
			Body: msg.Notification.Body,
			Icon: icon,
		},
	}, nil
}
