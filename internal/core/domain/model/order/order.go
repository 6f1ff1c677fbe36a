package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// maxNotesLength bounds the free-text delivery notes.
const maxNotesLength = 1000

// Order is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - Items are non-empty and immutable after creation
//   - The total amount is the sum of the item subtotals captured at checkout
//   - The delivery address and creation time never change
//   - Status changes only through ChangeStatus, following ValidateTransition
//   - Payment status is owned by the payment provider and untouched by transitions
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	items           []Item
	totalAmount     kernel.Money
	status          Status
	paymentStatus   PaymentStatus
	deliveryAddress kernel.Address
	notes           string
	createdAt       time.Time
	updatedAt       time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder places a new order in Pending status with a pending payment.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: the customer placing the order
//   - items: at least one line item
//   - deliveryAddress: validated postal address
//   - notes: optional delivery notes
//
// Example:
//
//	item, _ := order.NewItem(productID, farmerID, 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item}, address, "")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id, customerID kernel.UUID,
	items []Item,
	deliveryAddress kernel.Address,
	notes string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumSubtotals(o.items)
	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Items           []Item
	TotalAmount     kernel.Money
	Status          Status
	PaymentStatus   PaymentStatus
	DeliveryAddress kernel.Address
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder rebuilds an order loaded from storage. The stored total is kept
// as is, since it is the amount the customer was charged.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		totalAmount:   s.TotalAmount,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setItems(s.Items),
		s.TotalAmount.Validate(),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
		o.setDeliveryAddress(s.DeliveryAddress),
		o.setNotes(s.Notes),
	); err != nil {
		return nil, err
	}

	o.status = s.Status
	o.paymentStatus = s.PaymentStatus
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID identifies the customer who placed the order and receives its notifications.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// FarmerIDs returns the distinct owners of the ordered products, in item order.
func (o *Order) FarmerIDs() []kernel.UUID {
	farmers := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if !containsID(farmers, item.FarmerID()) {
			farmers = append(farmers, item.FarmerID())
		}
	}
	return farmers
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsPartyTo reports whether actor may see and act on the order: the customer
// who placed it, or a farmer owning at least one of its items.
func (o *Order) IsPartyTo(actor Actor) bool {
	switch actor.Role() {
	case RoleCustomer:
		return o.customerID.IsEqual(actor.ID())
	case RoleFarmer:
		return containsID(o.FarmerIDs(), actor.ID())
	default:
		return false
	}
}

// ChangeStatus moves the order to requested on behalf of actor.
//
// Business rules:
//   - A terminal order rejects every request with ErrInvalidTransition
//   - The actor must be a party to the order (see IsPartyTo)
//   - The transition must pass ValidateTransition for the actor's role
//   - A farmer requesting the current non-terminal status is a no-op
//
// Returns:
//   - changed: false when the request was an idempotent no-op
//   - error: *TransitionError (ErrInvalidTransition, ErrForbidden) or an
//     *errs.AccessDeniedError when the actor is not a party
func (o *Order) ChangeStatus(requested Status, actor Actor) (bool, error) {
	if err := actor.Validate(); err != nil {
		return false, err
	}

	if o.status.IsTerminal() {
		return false, ValidateTransition(o.status, requested, actor.Role())
	}

	if actor.Role() != RoleFarmer && actor.Role() != RoleCustomer {
		return false, newForbiddenTransitionError(o.status, requested, actor.Role())
	}

	if !o.IsPartyTo(actor) {
		return false, errs.NewAccessDeniedErrorWithCause(
			"order",
			fmt.Errorf("%s %s is not a party to order %s", actor.Role(), actor.ID(), o.id),
		)
	}

	if actor.Role() == RoleFarmer && requested == o.status {
		return false, nil
	}

	if err := ValidateTransition(o.status, requested, actor.Role()); err != nil {
		return false, err
	}

	o.status = requested
	o.updatedAt = time.Now().UTC()
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems copies the items so the caller's slice cannot alter the order.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.productID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d is invalid", i), err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, maxNotesLength)
	}
	o.notes = notes
	return nil
}

func sumSubtotals(items []Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func containsID(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}
