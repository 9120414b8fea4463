package queries

import (
	"errors"

	"storefront/internal/core/domain/model/invoice"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrListInvoicesQueryIsNotConstructed = errors.New(
	"ListInvoicesQuery must be created via NewListInvoicesQuery constructor",
)

// ListInvoicesQuery filters invoices by any combination of order, vendor and
// status. Zero values mean "any".
type ListInvoicesQuery struct {
	orderID  kernel.UUID
	vendorID kernel.UUID
	status   invoice.Status
	guard    guard.ConstructorGuard
}

func NewListInvoicesQuery() ListInvoicesQuery {
	return ListInvoicesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListInvoicesQuery) ForOrder(orderID kernel.UUID) ListInvoicesQuery {
	q.orderID = orderID
	return q
}

func (q ListInvoicesQuery) ForVendor(vendorID kernel.UUID) ListInvoicesQuery {
	q.vendorID = vendorID
	return q
}

// WithStatus filters by the stored status. Overdue is never stored, so an
// Overdue filter selects unsettled invoices past their due date instead.
func (q ListInvoicesQuery) WithStatus(status invoice.Status) ListInvoicesQuery {
	q.status = status
	return q
}

func (q ListInvoicesQuery) OrderID() kernel.UUID   { return q.orderID }
func (q ListInvoicesQuery) VendorID() kernel.UUID  { return q.vendorID }
func (q ListInvoicesQuery) Status() invoice.Status { return q.status }

func (q ListInvoicesQuery) Validate() error {
	if err := q.guard.Validate(ErrListInvoicesQueryIsNotConstructed); err != nil {
		return err
	}
	if q.status != invoice.Unknown {
		return q.status.Validate()
	}
	return nil
}
