package notifier

import "context"

// Notifier delivers a run digest to a chat.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// NoopNotifier drops every message. Used when Telegram is not configured.
type NoopNotifier struct{}

// NewNoopNotifier creates a NoopNotifier.
func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

// Send discards text.
func (n *NoopNotifier) Send(_ context.Context, _ string) error { return nil }
