package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderProgressQueryIsNotConstructed = errors.New(
		"GetOrderProgressQuery must be created via NewGetOrderProgressQuery constructor",
	)
)

// GetOrderProgressQuery builds the progress tracker of an order for display.
type GetOrderProgressQuery struct {
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderProgressQuery(orderID kernel.UUID, actor order.Actor) (GetOrderProgressQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderProgressQuery{}, err
	}

	return GetOrderProgressQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProgressQueryIsNotConstructed)
}

func (q GetOrderProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderProgressQuery) Actor() order.Actor {
	return q.actor
}

// GetOrderProgressQueryResponse pairs the stored status with its progress steps.
type GetOrderProgressQueryResponse struct {
	OrderID kernel.UUID
	Status  order.Status
	Steps   []services.ProgressStep
}
