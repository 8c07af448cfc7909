package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator checks requests against the OpenAPI contract before they reach a handler.
// Requests for paths the contract does not describe (health, metrics, docs) pass through.
func NewRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{MultiError: false}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) && routeErr.Reason == routers.ErrMethodNotAllowed.Error() {
					return echo.NewHTTPError(http.StatusMethodNotAllowed, routeErr.Reason)
				}
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}

			return next(ctx)
		}
	}, nil
}

// validationMessage drops the schema dump kin-openapi appends to body errors.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		var schemaErr *openapi3.SchemaError
		if errors.As(reqErr.Err, &schemaErr) {
			return fmt.Sprintf("%s: %s", reqErr.Reason, schemaErr.Reason)
		}
		if reqErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %v", reqErr.Parameter.Name, reqErr.Err)
		}
		if reqErr.Err != nil {
			return fmt.Sprintf("%s: %v", reqErr.Reason, reqErr.Err)
		}
		return reqErr.Reason
	}
	return err.Error()
}
