package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order view from the database.
type GetOrderQueryHandler struct {
	reader orderReader
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: newOrderReader(db)}
}

// Handle returns the order as seen by the query's actor.
//
// Errors:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.AccessDeniedError when the actor is not a party to the order
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	return h.reader.getVisible(ctx, query.OrderID(), query.Actor())
}
