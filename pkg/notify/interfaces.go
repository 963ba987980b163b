package notify

import "context"

// Notifier sends events to a downstream sink (SQS, SNS, Pub/Sub, HTTP).
type Notifier interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
}
