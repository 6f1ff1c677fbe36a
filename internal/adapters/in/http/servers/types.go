// Package servers holds the HTTP contract of the order API: the OpenAPI
// document, its request and response types, and the echo bindings that turn
// requests into ServerInterface calls.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// OrderStatus is the wire name of an order status.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Address defines model for Address.
type Address struct {
	City    string `json:"city"`
	Country string `json:"country"`
	State   string `json:"state,omitempty"`
	Street  string `json:"street"`
	ZipCode string `json:"zip_code,omitempty"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	FarmerId  openapi_types.UUID `json:"farmer_id"`
	ProductId openapi_types.UUID `json:"product_id"`
	Quantity  int                `json:"quantity"`
	UnitPrice string             `json:"unit_price"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	DeliveryAddress Address        `json:"delivery_address"`
	Items           []NewOrderItem `json:"items"`
	Notes           *string        `json:"notes,omitempty"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	FarmerId  openapi_types.UUID `json:"farmer_id"`
	ProductId openapi_types.UUID `json:"product_id"`
	Quantity  int                `json:"quantity"`
	Subtotal  string             `json:"subtotal"`
	UnitPrice string             `json:"unit_price"`
}

// Order defines model for Order.
type Order struct {
	AllowedTransitions []OrderStatus      `json:"allowed_transitions"`
	CreatedAt          time.Time          `json:"created_at"`
	CustomerId         openapi_types.UUID `json:"customer_id"`
	DeliveryAddress    Address            `json:"delivery_address"`
	Id                 openapi_types.UUID `json:"id"`
	Items              []OrderItem        `json:"items"`
	Notes              string             `json:"notes,omitempty"`
	PaymentStatus      string             `json:"payment_status"`
	Status             OrderStatus        `json:"status"`
	StatusColor        string             `json:"status_color"`
	StatusLabel        string             `json:"status_label"`
	TotalAmount        string             `json:"total_amount"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status OrderStatus `json:"status"`
}

// TransitionResult defines model for TransitionResult.
type TransitionResult struct {
	Changed bool    `json:"changed"`
	Order   Order   `json:"order"`
	Warning *string `json:"warning,omitempty"`
}

// ProgressStep defines model for ProgressStep.
type ProgressStep struct {
	Completed   bool        `json:"completed"`
	Current     bool        `json:"current"`
	Description string      `json:"description"`
	Label       string      `json:"label"`
	Status      OrderStatus `json:"status"`
}

// OrderProgress defines model for OrderProgress.
type OrderProgress struct {
	OrderId openapi_types.UUID `json:"order_id"`
	Status  OrderStatus        `json:"status"`
	Steps   []ProgressStep     `json:"steps"`
}

// Notification defines model for Notification.
type Notification struct {
	CreatedAt time.Time          `json:"created_at"`
	Id        openapi_types.UUID `json:"id"`
	Message   string             `json:"message"`
	OrderId   openapi_types.UUID `json:"order_id"`
	Read      bool               `json:"read"`
	Status    OrderStatus        `json:"status"`
	Title     string             `json:"title"`
	Type      string             `json:"type"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ActorParams carries the caller identity headers. XActorRole is nil for
// operations that identify the caller by id only.
type ActorParams struct {
	XActorID   openapi_types.UUID
	XActorRole *string
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}
