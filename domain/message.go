package domain

// Notification is the visible part of a push message.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image,omitempty"`
}

// PushMessage is a message delivered by the push transport.
// Only Notification is consumed, the rest is vendor metadata.
type PushMessage struct {
	MessageId    string            `json:"messageId,omitempty"`
	From         string            `json:"from,omitempty"`
	CollapseKey  string            `json:"collapseKey,omitempty"`
	Notification *Notification     `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}
