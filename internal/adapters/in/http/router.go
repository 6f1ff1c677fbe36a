package http

import (
	"net/http"

	"marketplace/internal/adapters/in/http/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Observability is the metrics surface mounted on the router.
type Observability struct {
	Middleware echo.MiddlewareFunc
	Handler    http.Handler
}

// NewRouter builds the echo instance serving the API, its documentation,
// health and metrics endpoints. API requests are validated against the
// OpenAPI document before they reach si.
func NewRouter(si servers.ServerInterface, observability Observability) (*echo.Echo, error) {
	validator, err := servers.RequestValidator()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	if observability.Middleware != nil {
		e.Use(observability.Middleware)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if observability.Handler != nil {
		e.GET("/metrics", echo.WrapHandler(observability.Handler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validator)
	servers.RegisterHandlers(api, si)

	return e, nil
}
