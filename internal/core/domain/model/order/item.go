package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Item is one line of an order. The unit price is a snapshot of the product
// price at checkout and never changes afterwards.
type Item struct {
	productID kernel.UUID
	farmerID  kernel.UUID
	quantity  int
	unitPrice kernel.Money
}

// NewItem validates a line item.
//
// Parameters:
//   - productID: the product being bought
//   - farmerID: owner of the product at checkout time
//   - quantity: must be positive
//   - unitPrice: price snapshot, non-negative
func NewItem(productID, farmerID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if err := errors.Join(
		productID.Validate(),
		farmerID.Validate(),
		quantityErr,
		unitPrice.Validate(),
	); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		farmerID:  farmerID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) FarmerID() kernel.UUID {
	return i.farmerID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal is unit price times quantity.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Multiply(i.quantity)
}
