// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and status for the listing queries.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          int             `gorm:"type:smallint;not null;index"`
	PaymentStatus   string          `gorm:"type:varchar(20);not null"`
	DeliveryAddress AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the delivery address embedded in the order table.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(100);not null"`
	State   string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(20)"`
	Country string `gorm:"type:varchar(100);not null"`
}

// OrderItemDTO represents one line item. The unit price is the snapshot taken at checkout.
type OrderItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	FarmerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			FarmerID:  item.FarmerID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	address := aggregate.DeliveryAddress()
	return OrderDTO{
		ID:            orderID,
		CustomerID:    aggregate.CustomerID().Bytes(),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		Status:        int(aggregate.Status()),
		PaymentStatus: aggregate.PaymentStatus().String(),
		DeliveryAddress: AddressDTO{
			Street:  address.Street(),
			City:    address.City(),
			State:   address.State(),
			ZipCode: address.ZipCode(),
			Country: address.Country(),
		},
		Notes:     aggregate.Notes(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Items:     items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Items must be preloaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.DeliveryAddress.Street,
		dto.DeliveryAddress.City,
		dto.DeliveryAddress.State,
		dto.DeliveryAddress.ZipCode,
		dto.DeliveryAddress.Country,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		CustomerID:      customerID,
		Items:           items,
		TotalAmount:     total,
		Status:          order.Status(dto.Status),
		PaymentStatus:   order.PaymentStatus(dto.PaymentStatus),
		DeliveryAddress: address,
		Notes:           dto.Notes,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, farmerID, dto.Quantity, price)
}
