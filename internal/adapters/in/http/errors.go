package http

import (
	"errors"
	"net/http"

	"marketplace/internal/adapters/in/http/servers"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCodeOf maps use case errors to HTTP status codes.
func statusCodeOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrForbidden), errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	code := statusCodeOf(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// ErrorHandler renders errors escaping the handlers, such as binding and
// validation failures, as servers.Error.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		ctx.Logger().Error(err)
	}

	var writeErr error
	if ctx.Request().Method == http.MethodHead {
		writeErr = ctx.NoContent(code)
	} else {
		writeErr = ctx.JSON(code, servers.Error{Code: code, Message: message})
	}
	if writeErr != nil {
		ctx.Logger().Error(writeErr)
	}
}
