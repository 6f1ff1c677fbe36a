package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler reads a recipient's notifications, newest first.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]NotificationView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			type,
			title,
			message,
			status,
			read,
			created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view        NotificationView
			id, orderID uuid.UUID
			status      int
			createdAt   time.Time
		)

		if err = rows.Scan(
			&id,
			&orderID,
			&view.Type,
			&view.Title,
			&view.Message,
			&status,
			&view.Read,
			&createdAt,
		); err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = notificationID

		orderRef, orderErr := kernel.UUIDFromBytes(orderID[:])
		if orderErr != nil {
			return nil, orderErr
		}
		view.OrderID = orderRef

		view.Status = order.Status(status)
		view.CreatedAt = createdAt
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
