// Package queries contains read-only operations of the order service.
// Query handlers read straight from the database with raw SQL and never load
// aggregates; they take no locks, so polling never blocks a transition.
package queries

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the read model of an order as shown to one of its parties.
type OrderView struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Items           []OrderItemView
	TotalAmount     kernel.Money
	Status          order.Status
	StatusLabel     string
	StatusColor     string
	PaymentStatus   order.PaymentStatus
	DeliveryAddress kernel.Address
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// AllowedTransitions lists the statuses the requesting actor may move the order to.
	AllowedTransitions []order.Status
}

// OrderItemView is one line item of an OrderView.
type OrderItemView struct {
	ProductID kernel.UUID
	FarmerID  kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// isVisibleTo reports whether actor is the customer of the order or a farmer owning one of its items.
func (v OrderView) isVisibleTo(actor order.Actor) bool {
	switch actor.Role() {
	case order.RoleCustomer:
		return v.CustomerID.IsEqual(actor.ID())
	case order.RoleFarmer:
		for _, item := range v.Items {
			if item.FarmerID.IsEqual(actor.ID()) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

const selectOrders = `
	SELECT
		o.id,
		o.customer_id,
		o.total_amount,
		o.status,
		o.payment_status,
		o.delivery_street,
		o.delivery_city,
		o.delivery_state,
		o.delivery_zip_code,
		o.delivery_country,
		o.notes,
		o.created_at,
		o.updated_at
	FROM orders o`

const selectOrderItems = `
	SELECT
		order_id,
		product_id,
		farmer_id,
		quantity,
		unit_price
	FROM order_items
	WHERE order_id IN ?
	ORDER BY id`

// orderReader assembles OrderViews from the orders and order_items tables.
type orderReader struct {
	db        *gorm.DB
	presenter services.StatusPresenter
}

func newOrderReader(db *gorm.DB) orderReader {
	return orderReader{db: db, presenter: services.NewStatusPresenter()}
}

// getVisible loads one order and checks that actor is a party to it.
func (r orderReader) getVisible(ctx context.Context, id kernel.UUID, actor order.Actor) (OrderView, error) {
	views, err := r.load(ctx, actor, "WHERE o.id = ?", id.Bytes())
	if err != nil {
		return OrderView{}, err
	}

	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", id.String())
	}

	view := views[0]
	if !view.isVisibleTo(actor) {
		return OrderView{}, errs.NewAccessDeniedErrorWithCause(
			"order",
			fmt.Errorf("%s %s is not a party to order %s", actor.Role(), actor.ID(), id),
		)
	}
	return view, nil
}

// load runs selectOrders with the given condition and attaches the items of every row.
func (r orderReader) load(ctx context.Context, actor order.Actor, condition string, args ...any) ([]OrderView, error) {
	rows, err := r.db.WithContext(ctx).Raw(selectOrders+" "+condition, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id, customerID                    uuid.UUID
			total                             decimal.Decimal
			status                            int
			paymentStatus                     string
			street, city, state, zip, country string
			notes                             string
			createdAt, updatedAt              time.Time
		)
		if err = rows.Scan(
			&id, &customerID, &total, &status, &paymentStatus,
			&street, &city, &state, &zip, &country,
			&notes, &createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}

		view, viewErr := r.newView(actor, id, customerID, total, order.Status(status), paymentStatus)
		if viewErr != nil {
			return nil, viewErr
		}

		address, addrErr := kernel.NewAddress(street, city, state, zip, country)
		if addrErr != nil {
			return nil, addrErr
		}
		view.DeliveryAddress = address
		view.Notes = notes
		view.CreatedAt = createdAt
		view.UpdatedAt = updatedAt

		index[id] = len(views)
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return views, nil
	}

	if err = r.attachItems(ctx, views, index); err != nil {
		return nil, err
	}
	return views, nil
}

func (r orderReader) newView(
	actor order.Actor,
	id, customerID uuid.UUID,
	total decimal.Decimal,
	status order.Status,
	paymentStatus string,
) (OrderView, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}

	customer, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderView{}, err
	}

	amount, err := kernel.NewMoney(total)
	if err != nil {
		return OrderView{}, err
	}

	return OrderView{
		ID:                 orderID,
		CustomerID:         customer,
		TotalAmount:        amount,
		Status:             status,
		StatusLabel:        r.presenter.Label(status),
		StatusColor:        r.presenter.Color(status),
		PaymentStatus:      order.PaymentStatus(paymentStatus),
		AllowedTransitions: order.AllowedTransitions(status, actor.Role()),
	}, nil
}

func (r orderReader) attachItems(ctx context.Context, views []OrderView, index map[uuid.UUID]int) error {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	rows, err := r.db.WithContext(ctx).Raw(selectOrderItems, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, productID, farmerID uuid.UUID
			quantity                     int
			unitPrice                    decimal.Decimal
		)
		if err = rows.Scan(&orderID, &productID, &farmerID, &quantity, &unitPrice); err != nil {
			return err
		}

		item, itemErr := newItemView(productID, farmerID, quantity, unitPrice)
		if itemErr != nil {
			return itemErr
		}

		i := index[orderID]
		views[i].Items = append(views[i].Items, item)
	}

	return rows.Err()
}

func newItemView(productID, farmerID uuid.UUID, quantity int, unitPrice decimal.Decimal) (OrderItemView, error) {
	product, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderItemView{}, err
	}

	farmer, err := kernel.UUIDFromBytes(farmerID[:])
	if err != nil {
		return OrderItemView{}, err
	}

	price, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return OrderItemView{}, err
	}

	return OrderItemView{
		ProductID: product,
		FarmerID:  farmer,
		Quantity:  quantity,
		UnitPrice: price,
		Subtotal:  price.Multiply(quantity),
	}, nil
}
