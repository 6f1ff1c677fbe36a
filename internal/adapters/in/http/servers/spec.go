package servers

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var specYAML []byte

var (
	loadOnce   sync.Once
	swaggerDoc *openapi3.T
	loadErr    error
)

// GetSwagger returns the parsed and validated OpenAPI document of the API.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(specYAML)
		if err != nil {
			loadErr = fmt.Errorf("error loading OpenAPI document: %w", err)
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			loadErr = fmt.Errorf("invalid OpenAPI document: %w", err)
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, loadErr
}

// RequestValidator rejects requests to documented operations whose parameters
// or body do not match the OpenAPI document. Paths the document does not
// describe, such as /health, pass through unchecked.
func RequestValidator() (echo.MiddlewareFunc, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("error building OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if errors.Is(findErr, routers.ErrPathNotFound) || errors.Is(findErr, routers.ErrMethodNotAllowed) {
				return next(c)
			}
			if findErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, findErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(validationErr))
			}

			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) && requestErr.Parameter != nil {
		return fmt.Sprintf("invalid parameter %s: %v", requestErr.Parameter.Name, requestErr.Err)
	}
	return err.Error()
}

// swaggerSpec serves the OpenAPI document to echo-swagger through the swag registry.
type swaggerSpec struct{}

func (swaggerSpec) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return "{}"
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

func init() {
	swag.Register(swag.Name, swaggerSpec{})
}

