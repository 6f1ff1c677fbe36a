package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	   │            │             │           │              │
//	   └────────────┴─────────────┴───────────┴──────────────┴──> Cancelled
//
// Progress is strictly one step at a time along the canonical sequence.
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of every order when it is placed at checkout.
	Pending

	// Confirmed means the farmer accepted the order.
	Confirmed

	// Preparing means the farmer started harvesting or packing the goods.
	// From here on the customer can no longer cancel.
	Preparing

	// Ready means the order is packed and awaits pickup or dispatch.
	Ready

	// OutForDelivery means the order left the farm.
	OutForDelivery

	// Delivered is terminal: the customer received the order.
	Delivered

	// Cancelled is terminal and reachable from any non-terminal status.
	Cancelled
)

// canonicalSequence is the fixed forward path of an order.
var canonicalSequence = [...]Status{Pending, Confirmed, Preparing, Ready, OutForDelivery, Delivered}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// CanonicalSequence returns a copy of the forward path, Pending through Delivered.
func CanonicalSequence() []Status {
	sequence := make([]Status, len(canonicalSequence))
	copy(sequence, canonicalSequence[:])
	return sequence
}

// ParseStatus converts the wire name ("out_for_delivery") into a Status.
//
// Example:
//
//	requested, err := order.ParseStatus(body.Status)
//	if err != nil {
//	    return ctx.JSON(http.StatusBadRequest, ...)
//	}
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate returns an error for Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the status immediately following s in the canonical sequence.
// It returns (Unknown, false) for terminal and invalid statuses. Next never
// looks at roles or order contents.
//
// Example:
//
//	next, ok := order.Confirmed.Next() // Preparing, true
//	_, ok = order.Delivered.Next()     // false
func (s Status) Next() (Status, bool) {
	if s.IsTerminal() {
		return Unknown, false
	}
	for i, status := range canonicalSequence {
		if status == s && i+1 < len(canonicalSequence) {
			return canonicalSequence[i+1], true
		}
	}
	return Unknown, false
}

// position returns the index of s in the canonical sequence, or -1.
func (s Status) position() int {
	for i, status := range canonicalSequence {
		if status == s {
			return i
		}
	}
	return -1
}

// Precedes reports whether s comes strictly before other in the canonical sequence.
// Cancelled and invalid statuses precede nothing.
func (s Status) Precedes(other Status) bool {
	a, b := s.position(), other.position()
	return a >= 0 && b >= 0 && a < b
}
