package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order views visible to an actor, newest first.
type ListOrdersQueryHandler struct {
	reader orderReader
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: newOrderReader(db)}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()

	condition := "WHERE o.customer_id = ?"
	if actor.Role() == order.RoleFarmer {
		condition = "WHERE EXISTS (SELECT 1 FROM order_items i WHERE i.order_id = o.id AND i.farmer_id = ?)"
	}
	args := []any{actor.ID().Bytes()}

	if status, ok := query.Status(); ok {
		condition += " AND o.status = ?"
		args = append(args, int(status))
	}

	return h.reader.load(ctx, actor, condition+" ORDER BY o.created_at DESC, o.id", args...)
}
