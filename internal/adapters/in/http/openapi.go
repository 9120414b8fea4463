package http

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match the API document.
// Requests for paths the document does not describe pass through untouched.
// Authentication is left to JWTAuth.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/") {
				return next(c)
			}

			route, pathParams, findErr := router.FindRoute(req)
			var routeErr *routers.RouteError
			if errors.As(findErr, &routeErr) {
				if routeErr.Reason == routers.ErrMethodNotAllowed.Error() {
					return echo.NewHTTPError(http.StatusMethodNotAllowed, routeErr.Reason)
				}
				return next(c)
			}
			if findErr != nil {
				return findErr
			}

			validateErr := openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if validateErr != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", validateErr)
			}

			return next(c)
		}
	}, nil
}
