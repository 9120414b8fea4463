package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type cartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=1,max=99"`
}

type cartQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=99"`
}

// GetCart handles GET /api/v1/carts/:sessionId.
func (s *Server) GetCart(c echo.Context) error {
	return s.respondWithCart(c, http.StatusOK)
}

// AddCartItem handles POST /api/v1/carts/:sessionId/items.
func (s *Server) AddCartItem(c echo.Context) error {
	var req cartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeCartCommand(c.Param("sessionId"), productID, req.Quantity)
	if err != nil {
		return err
	}
	if _, err = s.h.Carts.AddItem(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithCart(c, http.StatusOK)
}

// SetCartItemQuantity handles PUT /api/v1/carts/:sessionId/items/:productId.
func (s *Server) SetCartItemQuantity(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}
	var req cartQuantityRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeCartCommand(c.Param("sessionId"), productID, *req.Quantity)
	if err != nil {
		return err
	}
	if _, err = s.h.Carts.SetQuantity(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithCart(c, http.StatusOK)
}

// RemoveCartItem handles DELETE /api/v1/carts/:sessionId/items/:productId.
func (s *Server) RemoveCartItem(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeCartCommand(c.Param("sessionId"), productID, 0)
	if err != nil {
		return err
	}
	if _, err = s.h.Carts.RemoveItem(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithCart(c, http.StatusOK)
}

// ClearCart handles DELETE /api/v1/carts/:sessionId.
func (s *Server) ClearCart(c echo.Context) error {
	cmd, err := commands.NewClearCartCommand(c.Param("sessionId"))
	if err != nil {
		return err
	}
	if err = s.h.Carts.Clear(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithCart(c echo.Context, status int) error {
	query, err := queries.NewGetCartQuery(c.Param("sessionId"))
	if err != nil {
		return err
	}
	view, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toCart(view))
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
