package queries

import (
	"context"

	"marketplace/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrderProgressQueryHandler reads the stored status of an order and lays it
// out over the canonical lifecycle.
type GetOrderProgressQueryHandler struct {
	reader    orderReader
	presenter services.StatusPresenter
}

func NewGetOrderProgressQueryHandler(db *gorm.DB) GetOrderProgressQueryHandler {
	return GetOrderProgressQueryHandler{
		reader:    newOrderReader(db),
		presenter: services.NewStatusPresenter(),
	}
}

func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (GetOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	view, err := h.reader.getVisible(ctx, query.OrderID(), query.Actor())
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	return GetOrderProgressQueryResponse{
		OrderID: view.ID,
		Status:  view.Status,
		Steps:   h.presenter.Progress(view.Status),
	}, nil
}
