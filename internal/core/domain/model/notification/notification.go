// Package notification provides the customer inbox entry created when an
// order changes status.
package notification

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// TypeOrderStatus is the only notification type emitted by the order service.
const TypeOrderStatus = "order_status"

// orderStatusTitle is the inbox title of every status change notification.
const orderStatusTitle = "Order Status Update"

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewOrderStatusNotification")

// Notification is an inbox entry for one recipient. It is read by the
// recipient through the API and relayed to the event stream once.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	orderID     kernel.UUID
	status      order.Status
	message     string
	read        bool
	createdAt   time.Time
	publishedAt *time.Time

	isConstructed bool
}

// NewOrderStatusNotification creates an unread, unpublished notification about
// orderID entering status.
func NewOrderStatusNotification(
	recipientID, orderID kernel.UUID,
	status order.Status,
	message string,
) (*Notification, error) {
	var messageErr error
	if strings.TrimSpace(message) == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}

	if err := errors.Join(
		recipientID.Validate(),
		orderID.Validate(),
		status.Validate(),
		messageErr,
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            kernel.NewUUID(),
		recipientID:   recipientID,
		orderID:       orderID,
		status:        status,
		message:       message,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// Snapshot carries the persisted state of a notification for RestoreNotification.
type Snapshot struct {
	ID          kernel.UUID
	RecipientID kernel.UUID
	OrderID     kernel.UUID
	Status      order.Status
	Message     string
	Read        bool
	CreatedAt   time.Time
	PublishedAt *time.Time
}

func RestoreNotification(s Snapshot) (*Notification, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.RecipientID.Validate(),
		s.OrderID.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            s.ID,
		recipientID:   s.RecipientID,
		orderID:       s.OrderID,
		status:        s.Status,
		message:       s.Message,
		read:          s.Read,
		createdAt:     s.CreatedAt,
		publishedAt:   s.PublishedAt,
		isConstructed: true,
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }
func (n *Notification) OrderID() kernel.UUID     { return n.orderID }
func (n *Notification) Status() order.Status     { return n.status }
func (n *Notification) Type() string             { return TypeOrderStatus }
func (n *Notification) Title() string            { return orderStatusTitle }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) IsRead() bool             { return n.read }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
func (n *Notification) PublishedAt() *time.Time  { return n.publishedAt }

// IsPublished reports whether the notification was already relayed to the event stream.
func (n *Notification) IsPublished() bool {
	return n.publishedAt != nil
}
