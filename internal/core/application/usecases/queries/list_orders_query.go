package queries

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists the orders an actor is a party to: the orders a customer
// placed, or the orders containing at least one of a farmer's products.
//
// Example:
//
//	confirmed := order.Confirmed
//	query, err := NewListOrdersQuery(farmer, &confirmed)
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor  order.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts customers and farmers only. A nil status lists
// orders in every status.
func NewListOrdersQuery(actor order.Actor, status *order.Status) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	if actor.Role() != order.RoleCustomer && actor.Role() != order.RoleFarmer {
		return ListOrdersQuery{}, errs.NewAccessDeniedErrorWithCause(
			"orders",
			fmt.Errorf("role %q cannot list orders", actor.Role()),
		)
	}

	query := ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		s := *status
		query.status = &s
	}

	return query, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() order.Actor {
	return q.actor
}

// Status returns the status filter and whether one is set.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}
