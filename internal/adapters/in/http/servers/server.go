package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List the orders the actor is a party to, newest first
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, actor ActorParams, params ListOrdersParams) error
	// Place an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context, actor ActorParams) error
	// Read the current state of an order
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID, actor ActorParams) error
	// Progress tracker of an order
	// (GET /api/v1/orders/{id}/progress)
	GetOrderProgress(ctx echo.Context, id openapi_types.UUID, actor ActorParams) error
	// Request a status transition
	// (PUT /api/v1/orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID, actor ActorParams) error
	// Inbox of the actor, newest first
	// (GET /api/v1/notifications)
	ListNotifications(ctx echo.Context, actor ActorParams) error
	// Remove an inbox entry
	// (DELETE /api/v1/notifications/{id})
	DeleteNotification(ctx echo.Context, id openapi_types.UUID, actor ActorParams) error
	// Mark an inbox entry as read
	// (PUT /api/v1/notifications/{id}/read)
	MarkNotificationRead(ctx echo.Context, id openapi_types.UUID, actor ActorParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func badRequest(format string, args ...any) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, badRequest("Invalid format for parameter id: %s", err)
	}
	return id, nil
}

func bindActor(ctx echo.Context, withRole bool) (ActorParams, error) {
	var actor ActorParams
	headers := ctx.Request().Header

	valueList, found := headers[http.CanonicalHeaderKey("X-Actor-ID")]
	if !found {
		return actor, badRequest("Header parameter X-Actor-ID is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return actor, badRequest("Expected one value for X-Actor-ID, got %d", n)
	}

	err := runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", valueList[0], &actor.XActorID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return actor, badRequest("Invalid format for parameter X-Actor-ID: %s", err)
	}

	if !withRole {
		return actor, nil
	}

	valueList, found = headers[http.CanonicalHeaderKey("X-Actor-Role")]
	if !found {
		return actor, badRequest("Header parameter X-Actor-Role is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return actor, badRequest("Expected one value for X-Actor-Role, got %d", n)
	}

	var role string
	err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-Role", valueList[0], &role,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return actor, badRequest("Invalid format for parameter X-Actor-Role: %s", err)
	}
	actor.XActorRole = &role

	return actor, nil
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	actor, err := bindActor(ctx, true)
	if err != nil {
		return err
	}

	var params ListOrdersParams
	if err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return badRequest("Invalid format for parameter status: %s", err)
	}

	return w.Handler.ListOrders(ctx, actor, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	actor, err := bindActor(ctx, true)
	if err != nil {
		return err
	}

	return w.Handler.CreateOrder(ctx, actor)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	actor, err := bindActor(ctx, true)
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, id, actor)
}

// GetOrderProgress converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderProgress(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	actor, err := bindActor(ctx, true)
	if err != nil {
		return err
	}

	return w.Handler.GetOrderProgress(ctx, id, actor)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	actor, err := bindActor(ctx, true)
	if err != nil {
		return err
	}

	return w.Handler.UpdateOrderStatus(ctx, id, actor)
}

// ListNotifications converts echo context to params.
func (w *ServerInterfaceWrapper) ListNotifications(ctx echo.Context) error {
	actor, err := bindActor(ctx, false)
	if err != nil {
		return err
	}

	return w.Handler.ListNotifications(ctx, actor)
}

// DeleteNotification converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteNotification(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	actor, err := bindActor(ctx, false)
	if err != nil {
		return err
	}

	return w.Handler.DeleteNotification(ctx, id, actor)
}

// MarkNotificationRead converts echo context to params.
func (w *ServerInterfaceWrapper) MarkNotificationRead(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	actor, err := bindActor(ctx, false)
	if err != nil {
		return err
	}

	return w.Handler.MarkNotificationRead(ctx, id, actor)
}

// EchoRouter is the subset of echo routing used by RegisterHandlers. Both
// *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.GET(baseURL+"/api/v1/orders/:id/progress", wrapper.GetOrderProgress)
	router.PUT(baseURL+"/api/v1/orders/:id/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/api/v1/notifications", wrapper.ListNotifications)
	router.DELETE(baseURL+"/api/v1/notifications/:id", wrapper.DeleteNotification)
	router.PUT(baseURL+"/api/v1/notifications/:id/read", wrapper.MarkNotificationRead)
}
