package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/ports"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error returned by a use case to an HTTP status code.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, commands.ErrPartnerHasActiveOrders),
		errors.Is(err, ports.ErrRunInProgress),
		errors.Is(err, partner.ErrPartnerIsInactive),
		errors.Is(err, partner.ErrPartnerIsAtCapacity):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler returns an echo.HTTPErrorHandler that renders every error as servers.Error.
// Internal failures are logged and reported without details.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := statusFor(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}

		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"error", err)
			message = http.StatusText(code)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.Error("Failed to write error response", "error", err)
		}
	}
}
