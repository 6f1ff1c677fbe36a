package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrNotificationCommandIsNotConstructed = errors.New(
	"NotificationCommand must be created via NewNotificationCommand constructor",
)

// NotificationCommand addresses one inbox entry of a recipient. It is handled
// by MarkNotificationReadCommandHandler and DeleteNotificationCommandHandler.
type NotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	recipientID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewNotificationCommand(notificationID, recipientID kernel.UUID) (NotificationCommand, error) {
	if err := errors.Join(notificationID.Validate(), recipientID.Validate()); err != nil {
		return NotificationCommand{}, err
	}

	return NotificationCommand{
		notificationID: notificationID,
		recipientID:    recipientID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c NotificationCommand) Validate() error {
	return c.guard.Validate(ErrNotificationCommandIsNotConstructed)
}

func (c NotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c NotificationCommand) RecipientID() kernel.UUID {
	return c.recipientID
}
