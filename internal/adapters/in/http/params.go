package http

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapitypes "github.com/oapi-codegen/runtime/types"
)

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id openapitypes.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

// queryUUID returns the zero UUID when the parameter is absent.
func queryUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id *openapitypes.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &id); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if id == nil {
		return kernel.UUID{}, nil
	}
	return kernel.UUIDFromBytes(id[:])
}

func queryString(c echo.Context, name string) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}
