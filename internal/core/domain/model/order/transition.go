package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when the requested status is not reachable
	// from the current one under the canonical sequence and terminal rules.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrForbidden is returned when the acting role may not request the transition.
	ErrForbidden = errors.New("status transition is forbidden")
)

// TransitionError describes a rejected transition. It unwraps to
// ErrInvalidTransition or ErrForbidden.
type TransitionError struct {
	From Status
	To   Status
	Role Role
	kind error
}

func newInvalidTransitionError(from, to Status, role Role) *TransitionError {
	return &TransitionError{From: from, To: to, Role: role, kind: ErrInvalidTransition}
}

func newForbiddenTransitionError(from, to Status, role Role) *TransitionError {
	return &TransitionError{From: from, To: to, Role: role, kind: ErrForbidden}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s as %q", e.kind, e.From, e.To, string(e.Role))
}

func (e *TransitionError) Unwrap() error {
	return e.kind
}

// customerCancellable lists the statuses a customer may still cancel from.
// Once preparation starts only the farmer can cancel.
func customerCancellable(s Status) bool {
	return s == Pending || s == Confirmed
}

// ValidateTransition checks whether role may move an order from current to
// requested. It is pure: no persistence, no ownership checks.
//
// Rules, evaluated in order:
//   - current is terminal (Delivered, Cancelled): ErrInvalidTransition for any target
//   - farmer: requested must be current.Next() or Cancelled, else ErrInvalidTransition
//   - customer: requested must be Cancelled while current is Pending or Confirmed,
//     else ErrForbidden
//   - any other role: ErrForbidden
//
// Example:
//
//	err := order.ValidateTransition(order.Pending, order.Ready, order.RoleFarmer)
//	errors.Is(err, order.ErrInvalidTransition) // true, steps cannot be skipped
func ValidateTransition(current, requested Status, role Role) error {
	if err := current.Validate(); err != nil {
		return err
	}

	if current.IsTerminal() {
		return newInvalidTransitionError(current, requested, role)
	}

	switch role {
	case RoleFarmer:
		if requested == Cancelled {
			return nil
		}
		if next, ok := current.Next(); ok && requested == next {
			return nil
		}
		return newInvalidTransitionError(current, requested, role)

	case RoleCustomer:
		if requested == Cancelled && customerCancellable(current) {
			return nil
		}
		return newForbiddenTransitionError(current, requested, role)

	default:
		return newForbiddenTransitionError(current, requested, role)
	}
}

// AllowedTransitions lists the targets role may request from current, in
// canonical order with Cancelled last. It returns nil for terminal statuses.
func AllowedTransitions(current Status, role Role) []Status {
	candidates := append(CanonicalSequence(), Cancelled)

	var allowed []Status
	for _, candidate := range candidates {
		if ValidateTransition(current, candidate, role) == nil {
			allowed = append(allowed, candidate)
		}
	}
	return allowed
}
