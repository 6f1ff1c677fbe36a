package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationRepository stores customer inbox entries and tracks which of
// them were relayed to the event stream.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, n *notification.Notification) error

	// MarkRead flags a notification of recipientID as read.
	// Returns *errs.ObjectNotFoundError when no such notification belongs to the recipient.
	MarkRead(ctx context.Context, id, recipientID kernel.UUID) error

	// Delete removes a notification of recipientID.
	// Returns *errs.ObjectNotFoundError when no such notification belongs to the recipient.
	Delete(ctx context.Context, id, recipientID kernel.UUID) error

	// FetchUnpublished returns up to limit notifications not yet relayed, oldest first.
	FetchUnpublished(ctx context.Context, limit int) ([]*notification.Notification, error)

	// MarkPublished records that the notification was relayed.
	MarkPublished(ctx context.Context, id kernel.UUID) error
}
