package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type notesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes" validate:"max=2000"`
}

// ListOrders handles GET /api/v1/admin/orders[?status=Order Shipped].
func (s *Server) ListOrders(c echo.Context) error {
	raw, err := queryString(c, "status")
	if err != nil {
		return err
	}

	var status *order.Status
	if raw != "" {
		parsed, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return parseErr
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderSummary(o))
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/admin/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}
	details, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrder(details))
}

// AdvanceOrderStatus handles POST /api/v1/admin/orders/:orderId/advance. When
// the move into Invoice Issued succeeds but invoicing fails, the transition is
// still reported with 200 and the failure is returned in invoiceError.
func (s *Server) AdvanceOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req notesRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, actor, req.Notes)
	if err != nil {
		return err
	}

	result, err := s.h.AdvanceOrderStatus.Handle(c.Request().Context(), cmd)
	return s.respondWithTransition(c, result, err)
}

// SetOrderStatus handles PUT /api/v1/admin/orders/:orderId/status. Only the
// immediate successor of the current status is accepted.
func (s *Server) SetOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req setStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, actor, target, req.Notes)
	if err != nil {
		return err
	}

	result, err := s.h.SetOrderStatus.Handle(c.Request().Context(), cmd)
	return s.respondWithTransition(c, result, err)
}

func (s *Server) respondWithTransition(c echo.Context, result commands.OrderTransitionResult, err error) error {
	if err != nil && !errors.Is(err, commands.ErrInvoiceGenerationFailed) {
		return err
	}

	response := toTransition(result)
	if err != nil {
		s.logger.WarnContext(c.Request().Context(), "order advanced without invoices",
			"order_id", result.OrderID.String(),
			"error", err,
		)
		response.InvoiceError = err.Error()
	}
	return c.JSON(http.StatusOK, response)
}

// AddOrderNote handles POST /api/v1/admin/orders/:orderId/notes.
func (s *Server) AddOrderNote(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req notesRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderNoteCommand(orderID, actor, req.Notes)
	if err != nil {
		return err
	}
	if err = s.h.AddOrderNote.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GenerateInvoices handles POST /api/v1/admin/orders/:orderId/invoices. It is
// safe to repeat: vendors already invoiced are reported as skipped.
func (s *Server) GenerateInvoices(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateInvoicesCommand(orderID)
	if err != nil {
		return err
	}
	result, err := s.h.GenerateInvoices.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, GenerateInvoicesResponse{
		OrderID:        result.OrderID.String(),
		InvoiceIDs:     ids(result.InvoiceIDs),
		SkippedVendors: ids(result.SkippedVendors),
	})
}
