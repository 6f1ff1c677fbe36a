package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role is the kind of party acting on an order.
type Role string

const (
	// RoleFarmer sells at least one item of the order and drives fulfilment.
	RoleFarmer Role = "farmer"

	// RoleCustomer placed the order.
	RoleCustomer Role = "customer"
)

// ParseRole accepts "farmer" and "customer".
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate accepts only farmer and customer.
func (r Role) Validate() error {
	if r != RoleFarmer && r != RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the role as sent in requests, e.g. "farmer".
func (r Role) String() string {
	return string(r)
}

// Actor is the caller of an order operation: who they are and in which role
// they act. Actors are passed explicitly into every operation; nothing in the
// domain looks up an ambient session.
//
// The role is only required to be present. Roles other than farmer and
// customer are representable so that transition rules can reject them as
// forbidden rather than as malformed input.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor validates the identifier and requires a non-empty role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	actor := Actor{id: id, role: role}
	if err := actor.Validate(); err != nil {
		return Actor{}, err
	}
	return actor, nil
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) Validate() error {
	var roleErr error
	if a.role == "" {
		roleErr = errs.NewValueIsRequiredError("role")
	}
	return errors.Join(a.id.Validate(), roleErr)
}
