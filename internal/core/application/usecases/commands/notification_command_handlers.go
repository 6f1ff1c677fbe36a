package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler flags an inbox entry as read.
// Returns *errs.ObjectNotFoundError when the entry does not belong to the recipient.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd NotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().MarkRead(ctx, cmd.NotificationID(), cmd.RecipientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteNotificationCommandHandler removes an inbox entry.
// Returns *errs.ObjectNotFoundError when the entry does not belong to the recipient.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{uowFactory: uowFactory}
}

func (h DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd NotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Delete(ctx, cmd.NotificationID(), cmd.RecipientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
