package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
)

// ListNotificationsQuery reads the inbox of one recipient.
type ListNotificationsQuery struct {
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(recipientID kernel.UUID) (ListNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		recipientID: recipientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// NotificationView is one inbox entry.
type NotificationView struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Type      string
	Title     string
	Message   string
	Status    order.Status
	Read      bool
	CreatedAt time.Time
}
