package http

import (
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/invoice"

	"github.com/labstack/echo/v4"
)

type settleRequest struct {
	SettledDate *time.Time `json:"settledDate"`
}

// ListInvoices handles GET /api/v1/admin/invoices with optional orderId,
// vendorId and status filters.
func (s *Server) ListInvoices(c echo.Context) error {
	query := queries.NewListInvoicesQuery()

	orderID, err := queryUUID(c, "orderId")
	if err != nil {
		return err
	}
	if !orderID.IsZero() {
		query = query.ForOrder(orderID)
	}

	vendorID, err := queryUUID(c, "vendorId")
	if err != nil {
		return err
	}
	if !vendorID.IsZero() {
		query = query.ForVendor(vendorID)
	}

	rawStatus, err := queryString(c, "status")
	if err != nil {
		return err
	}
	if rawStatus != "" {
		status, parseErr := invoice.ParseStatus(rawStatus)
		if parseErr != nil {
			return parseErr
		}
		query = query.WithStatus(status)
	}

	invoices, err := s.h.ListInvoices.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		response = append(response, toInvoice(inv))
	}
	return c.JSON(http.StatusOK, response)
}

// SettleInvoice handles POST /api/v1/admin/invoices/:invoiceId/settle.
func (s *Server) SettleInvoice(c echo.Context) error {
	invoiceID, err := pathUUID(c, "invoiceId")
	if err != nil {
		return err
	}
	var req settleRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewMarkInvoiceSettledCommand(invoiceID, req.SettledDate)
	if err != nil {
		return err
	}
	if err = s.h.MarkInvoiceSettled.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
