package http

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/adapters/in/http/servers"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case handlers the server delegates to.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	RequestTransitionHandler interface {
		Handle(ctx context.Context, cmd commands.RequestTransitionCommand) (commands.TransitionResult, error)
	}

	NotificationHandler interface {
		Handle(ctx context.Context, cmd commands.NotificationCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}

	GetOrderProgressHandler interface {
		Handle(ctx context.Context, query queries.GetOrderProgressQuery) (queries.GetOrderProgressQueryResponse, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}

	ListNotificationsHandler interface {
		Handle(ctx context.Context, query queries.ListNotificationsQuery) ([]queries.NotificationView, error)
	}
)

// Handlers groups the command and query handlers served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder          CreateOrderHandler
	RequestTransition    RequestTransitionHandler
	MarkNotificationRead NotificationHandler
	DeleteNotification   NotificationHandler

	// Query handlers
	GetOrder          GetOrderHandler
	GetOrderProgress  GetOrderProgressHandler
	ListOrders        ListOrdersHandler
	ListNotifications ListNotificationsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/v1/orders - lists the actor's orders.
func (s *Server) ListOrders(ctx echo.Context, actorParams servers.ActorParams, params servers.ListOrdersParams) error {
	actor, err := actorFrom(actorParams)
	if err != nil {
		return respondError(ctx, err)
	}

	var status *order.Status
	if params.Status != nil {
		parsed, parseErr := order.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(actor, status)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = orderFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order for the acting customer.
func (s *Server) CreateOrder(ctx echo.Context, actorParams servers.ActorParams) error {
	actor, err := actorFrom(actorParams)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := itemsFromRequest(body.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := kernel.NewAddress(
		body.DeliveryAddress.Street,
		body.DeliveryAddress.City,
		body.DeliveryAddress.State,
		body.DeliveryAddress.ZipCode,
		body.DeliveryAddress.Country,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor, items, address, notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromView(view))
}

// GetOrder handles GET /api/v1/orders/{id} - the poll endpoint of order tracking.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID, actorParams servers.ActorParams) error {
	actor, err := actorFrom(actorParams)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// GetOrderProgress handles GET /api/v1/orders/{id}/progress.
func (s *Server) GetOrderProgress(ctx echo.Context, id openapi_types.UUID, actorParams servers.ActorParams) error {
	actor, err := actorFrom(actorParams)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderProgressQuery(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	progress, err := s.handlers.GetOrderProgress.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	steps := make([]servers.ProgressStep, len(progress.Steps))
	for i, step := range progress.Steps {
		steps[i] = servers.ProgressStep{
			Status:      servers.OrderStatus(step.Status.String()),
			Label:       step.Label,
			Description: step.Description,
			Completed:   step.Completed,
			Current:     step.Current,
		}
	}

	return ctx.JSON(http.StatusOK, servers.OrderProgress{
		OrderId: progress.OrderID.Bytes(),
		Status:  servers.OrderStatus(progress.Status.String()),
		Steps:   steps,
	})
}

// UpdateOrderStatus handles PUT /api/v1/orders/{id}/status - requests a transition.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID, actorParams servers.ActorParams) error {
	actor, err := actorFrom(actorParams)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.StatusChange
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	requested, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, requested, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.RequestTransition.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := servers.TransitionResult{
		Order:   orderFromDomain(result.Order, actor.Role()),
		Changed: result.Changed,
	}
	if result.Warning != nil {
		s.logger.WarnContext(ctx.Request().Context(), "Order status stored but customer notification failed",
			"order_id", orderID.String(),
			"status", requested.String(),
			"error", result.Warning,
		)
		warning := result.Warning.Error()
		response.Warning = &warning
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListNotifications handles GET /api/v1/notifications - the actor's inbox.
func (s *Server) ListNotifications(ctx echo.Context, actorParams servers.ActorParams) error {
	recipientID, err := kernel.UUIDFromBytes(actorParams.XActorID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListNotificationsQuery(recipientID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.handlers.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Notification, len(views))
	for i, view := range views {
		response[i] = servers.Notification{
			Id:        view.ID.Bytes(),
			OrderId:   view.OrderID.Bytes(),
			Type:      view.Type,
			Title:     view.Title,
			Message:   view.Message,
			Status:    servers.OrderStatus(view.Status.String()),
			Read:      view.Read,
			CreatedAt: view.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles PUT /api/v1/notifications/{id}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, id openapi_types.UUID, actorParams servers.ActorParams) error {
	return s.handleNotification(ctx, s.handlers.MarkNotificationRead, id, actorParams)
}

// DeleteNotification handles DELETE /api/v1/notifications/{id}.
func (s *Server) DeleteNotification(ctx echo.Context, id openapi_types.UUID, actorParams servers.ActorParams) error {
	return s.handleNotification(ctx, s.handlers.DeleteNotification, id, actorParams)
}

func (s *Server) handleNotification(
	ctx echo.Context,
	handler NotificationHandler,
	id openapi_types.UUID,
	actorParams servers.ActorParams,
) error {
	notificationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return respondError(ctx, err)
	}

	recipientID, err := kernel.UUIDFromBytes(actorParams.XActorID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewNotificationCommand(notificationID, recipientID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = handler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
