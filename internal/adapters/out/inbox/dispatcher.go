// Package inbox delivers order status notifications by writing them to the
// recipient's inbox. The relay job later forwards unpublished entries to the
// event stream.
package inbox

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// Dispatcher implements ports.NotificationDispatcher on top of the notification
// repository. Each notification is written in its own unit of work, separate
// from the status change it reports.
type Dispatcher struct {
	uowFactory ports.UnitOfWorkFactory
	presenter  services.StatusPresenter
}

func NewDispatcher(uowFactory ports.UnitOfWorkFactory) *Dispatcher {
	return &Dispatcher{
		uowFactory: uowFactory,
		presenter:  services.NewStatusPresenter(),
	}
}

func (d *Dispatcher) NotifyStatusChange(
	ctx context.Context,
	orderID kernel.UUID,
	status order.Status,
	recipientID kernel.UUID,
) error {
	n, err := notification.NewOrderStatusNotification(
		recipientID,
		orderID,
		status,
		d.presenter.NotificationMessage(status),
	)
	if err != nil {
		return err
	}

	uow := d.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin inbox write: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}

	return uow.Commit(ctx)
}
