package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type customerRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Phone        string `json:"phone" validate:"required,max=32"`
	DeliveryArea string `json:"deliveryArea" validate:"max=120"`
	DeliverySlot string `json:"deliverySlot" validate:"max=60"`
	Notes        string `json:"notes" validate:"max=1000"`
}

type checkoutRequest struct {
	SessionID string          `json:"sessionId" validate:"required"`
	Customer  customerRequest `json:"customer"`
}

// Checkout handles POST /api/v1/checkout: it places the order for the
// session's cart and returns the WhatsApp hand-off link.
func (s *Server) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := order.NewCustomer(
		req.Customer.Name,
		req.Customer.Phone,
		req.Customer.DeliveryArea,
		req.Customer.DeliverySlot,
		req.Customer.Notes,
	)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.SessionID, customer)
	if err != nil {
		return err
	}

	result, err := s.h.Checkout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber,
		Total:       result.Total,
		WhatsAppURL: result.HandoffURL,
	})
}
