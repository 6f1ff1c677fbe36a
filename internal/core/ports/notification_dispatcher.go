package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// NotificationDispatcher informs the counterpart of an order about a status
// change. Delivery is best-effort: callers report a returned error but never
// undo the status change because of it.
type NotificationDispatcher interface {
	NotifyStatusChange(ctx context.Context, orderID kernel.UUID, status order.Status, recipientID kernel.UUID) error
}

// EventPublisher writes a keyed message to an event stream topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

// TransitionMetrics records the outcome of transition requests.
type TransitionMetrics interface {
	ObserveTransition(from, to order.Status, role order.Role, outcome string)
}
