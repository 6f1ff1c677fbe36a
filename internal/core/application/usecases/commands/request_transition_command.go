package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand asks to move an order to a new status on behalf of an actor.
//
// Example:
//
//	actor, _ := order.NewActor(farmerID, order.RoleFarmer)
//	cmd, err := NewRequestTransitionCommand(orderID, order.Confirmed, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand validates the order identifier, the requested
// status and the actor. Whether the actor may perform the transition is decided
// by the handler against the stored order.
func NewRequestTransitionCommand(
	orderID kernel.UUID,
	status order.Status,
	actor order.Actor,
) (RequestTransitionCommand, error) {
	cmd := RequestTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setActor(actor),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return cmd, nil
}

func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c RequestTransitionCommand) Status() order.Status {
	return c.status
}

func (c RequestTransitionCommand) Actor() order.Actor {
	return c.actor
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *RequestTransitionCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
