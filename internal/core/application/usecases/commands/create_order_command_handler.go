package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler places new orders in pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customer, items, address, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle places the order. Only customers may place orders; the total is the
// sum of the item subtotals.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Customer().Role() != order.RoleCustomer {
		return errs.NewAccessDeniedErrorWithCause(
			"order",
			fmt.Errorf("only customers can place orders, got %s", cmd.Customer().Role()),
		)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Customer().ID(), cmd.Items(), cmd.Address(), cmd.Notes())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
