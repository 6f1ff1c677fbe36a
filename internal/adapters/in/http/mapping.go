package http

import (
	"fmt"

	"marketplace/internal/adapters/in/http/servers"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

func actorFrom(params servers.ActorParams) (order.Actor, error) {
	id, err := kernel.UUIDFromBytes(params.XActorID[:])
	if err != nil {
		return order.Actor{}, err
	}

	if params.XActorRole == nil {
		return order.Actor{}, errs.NewValueIsRequiredError("X-Actor-Role")
	}

	return order.NewActor(id, order.Role(*params.XActorRole))
}

func itemsFromRequest(requested []servers.NewOrderItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(requested))
	for i, r := range requested {
		productID, err := kernel.UUIDFromBytes(r.ProductId[:])
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].product_id", i), err)
		}

		farmerID, err := kernel.UUIDFromBytes(r.FarmerId[:])
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].farmer_id", i), err)
		}

		price, err := kernel.MoneyFromString(r.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(productID, farmerID, r.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func addressToResponse(a kernel.Address) servers.Address {
	return servers.Address{
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		ZipCode: a.ZipCode(),
		Country: a.Country(),
	}
}

func statusesToResponse(statuses []order.Status) []servers.OrderStatus {
	response := make([]servers.OrderStatus, len(statuses))
	for i, s := range statuses {
		response[i] = servers.OrderStatus(s.String())
	}
	return response
}

func orderFromView(view queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			FarmerId:  item.FarmerID.Bytes(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}

	return servers.Order{
		Id:                 view.ID.Bytes(),
		CustomerId:         view.CustomerID.Bytes(),
		Items:              items,
		TotalAmount:        view.TotalAmount.String(),
		Status:             servers.OrderStatus(view.Status.String()),
		StatusLabel:        view.StatusLabel,
		StatusColor:        view.StatusColor,
		PaymentStatus:      view.PaymentStatus.String(),
		DeliveryAddress:    addressToResponse(view.DeliveryAddress),
		Notes:              view.Notes,
		CreatedAt:          view.CreatedAt,
		UpdatedAt:          view.UpdatedAt,
		AllowedTransitions: statusesToResponse(view.AllowedTransitions),
	}
}

// orderFromDomain renders an order returned by a command for an actor acting in role.
func orderFromDomain(o *order.Order, role order.Role) servers.Order {
	presenter := services.NewStatusPresenter()

	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			ProductId: item.ProductID().Bytes(),
			FarmerId:  item.FarmerID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			Subtotal:  item.Subtotal().String(),
		})
	}

	return servers.Order{
		Id:                 o.ID().Bytes(),
		CustomerId:         o.CustomerID().Bytes(),
		Items:              items,
		TotalAmount:        o.TotalAmount().String(),
		Status:             servers.OrderStatus(o.Status().String()),
		StatusLabel:        presenter.Label(o.Status()),
		StatusColor:        presenter.Color(o.Status()),
		PaymentStatus:      o.PaymentStatus().String(),
		DeliveryAddress:    addressToResponse(o.DeliveryAddress()),
		Notes:              o.Notes(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		AllowedTransitions: statusesToResponse(order.AllowedTransitions(o.Status(), role)),
	}
}
