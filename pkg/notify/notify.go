package notify

import "context"

// Notification is the formatted sale announcement handed to every channel.
type Notification struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}

// Channel defines the interface for a notification delivery target.
// Implementations are fire-and-forget: no retries, an error marks the
// delivery as rejected and is logged by the caller.
type Channel interface {
	Name() string
	Send(ctx context.Context, n Notification) error
	Close() error
}
