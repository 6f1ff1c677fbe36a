package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

// OrderStatusChangedEvent is the message written to the event stream for every
// status change notification.
type OrderStatusChangedEvent struct {
	NotificationID string    `json:"notification_id"`
	OrderID        string    `json:"order_id"`
	RecipientID    string    `json:"recipient_id"`
	Status         string    `json:"status"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
	EventTime      time.Time `json:"event_time"`
}

// RelayResult counts the notifications handled by one relay run.
type RelayResult struct {
	Published int
	Failed    int
}

// RelayNotificationsCommandHandler forwards unpublished inbox notifications to
// the event stream. A notification is marked published only after the
// publisher accepted it, so a failed publish is retried on the next run.
// Delivery is at least once: a crash between publish and commit republishes.
type RelayNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	publisher ports.EventPublisher,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes one batch. Publish failures are counted and joined into the
// returned error; the notifications that were published stay marked.
func (h RelayNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd RelayNotificationsCommand,
) (RelayResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	batch, err := repo.FetchUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return RelayResult{}, err
	}

	var (
		result    RelayResult
		publishes []error
	)
	for _, n := range batch {
		if pubErr := h.publish(ctx, cmd.Topic(), n); pubErr != nil {
			result.Failed++
			publishes = append(publishes, pubErr)
			continue
		}

		if err = repo.MarkPublished(ctx, n.ID()); err != nil {
			return RelayResult{}, err
		}
		result.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayResult{}, err
	}

	return result, errors.Join(publishes...)
}

func (h RelayNotificationsCommandHandler) publish(
	ctx context.Context,
	topic string,
	n *notification.Notification,
) error {
	payload, err := json.Marshal(OrderStatusChangedEvent{
		NotificationID: n.ID().String(),
		OrderID:        n.OrderID().String(),
		RecipientID:    n.RecipientID().String(),
		Status:         n.Status().String(),
		Title:          n.Title(),
		Message:        n.Message(),
		CreatedAt:      n.CreatedAt(),
		EventTime:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return h.publisher.Publish(ctx, topic, n.OrderID().String(), payload)
}
