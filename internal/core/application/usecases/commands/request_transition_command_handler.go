package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// Transition outcomes reported to ports.TransitionMetrics.
const (
	OutcomeApplied   = "applied"
	OutcomeNoop      = "noop"
	OutcomeInvalid   = "invalid"
	OutcomeForbidden = "forbidden"
	OutcomeConflict  = "conflict"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

var ErrNotificationFailed = errors.New("notification failed")

// NotificationFailureError reports that an order changed status but its
// customer could not be notified. It is carried as a warning on
// TransitionResult and never undoes the transition.
type NotificationFailureError struct {
	OrderID kernel.UUID
	Status  order.Status
	Cause   error
}

func NewNotificationFailureError(orderID kernel.UUID, status order.Status, cause error) *NotificationFailureError {
	return &NotificationFailureError{OrderID: orderID, Status: status, Cause: cause}
}

func (e *NotificationFailureError) Error() string {
	return fmt.Sprintf("%s: order %s is now %s (cause: %v)", ErrNotificationFailed, e.OrderID, e.Status, e.Cause)
}

func (e *NotificationFailureError) Unwrap() error {
	return ErrNotificationFailed
}

// TransitionResult is the outcome of a successful transition request.
type TransitionResult struct {
	// Order is the order as stored after the request.
	Order *order.Order
	// Changed is false when the request repeated the current status.
	Changed bool
	// Warning is a *NotificationFailureError when the status change was stored
	// but the customer notification could not be delivered.
	Warning error
}

// RequestTransitionCommandHandler applies a status transition requested by a
// farmer or customer.
//
// Flow:
//  1. Load the order (*errs.ObjectNotFoundError)
//  2. Validate the transition for the actor (order.ErrInvalidTransition,
//     order.ErrForbidden, errs.ErrAccessDenied)
//  3. Store the new status only if the stored status is still the one
//     validated against (errs.ErrConcurrentModification)
//  4. Commit, then notify the customer
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    // re-fetch the order and re-derive the legal next action
//	case err != nil:
//	    return err
//	case result.Warning != nil:
//	    log.Printf("status stored, notification pending: %v", result.Warning)
//	}
type RequestTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationDispatcher
	metrics    ports.TransitionMetrics
}

func NewRequestTransitionCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
	metrics ports.TransitionMetrics,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		metrics:    metrics,
	}
}

func (h RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestTransitionCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		h.observe(order.Unknown, cmd, outcomeOf(err))
		return TransitionResult{}, err
	}

	previous := current.Status()
	changed, err := current.ChangeStatus(cmd.Status(), cmd.Actor())
	if err != nil {
		h.observe(previous, cmd, outcomeOf(err))
		return TransitionResult{}, err
	}

	if !changed {
		h.observe(previous, cmd, OutcomeNoop)
		return TransitionResult{Order: current}, nil
	}

	updated, err := orderRepo.CompareAndSetStatus(ctx, current.ID(), previous, current.Status())
	if err != nil {
		h.observe(previous, cmd, outcomeOf(err))
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		h.observe(previous, cmd, OutcomeError)
		return TransitionResult{}, err
	}

	h.observe(previous, cmd, OutcomeApplied)

	result := TransitionResult{Order: updated, Changed: true}
	if err = h.notifier.NotifyStatusChange(ctx, updated.ID(), updated.Status(), updated.CustomerID()); err != nil {
		result.Warning = NewNotificationFailureError(updated.ID(), updated.Status(), err)
	}

	return result, nil
}

func (h RequestTransitionCommandHandler) observe(from order.Status, cmd RequestTransitionCommand, outcome string) {
	if h.metrics == nil {
		return
	}
	h.metrics.ObserveTransition(from, cmd.Status(), cmd.Actor().Role(), outcome)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		return OutcomeInvalid
	case errors.Is(err, order.ErrForbidden), errors.Is(err, errs.ErrAccessDenied):
		return OutcomeForbidden
	case errors.Is(err, errs.ErrConcurrentModification):
		return OutcomeConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
