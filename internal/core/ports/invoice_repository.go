package ports

import (
	"context"

	"storefront/internal/core/domain/model/invoice"
	"storefront/internal/core/domain/model/kernel"
)

// InvoiceRepository persists invoice aggregates.
type InvoiceRepository interface {
	Add(ctx context.Context, aggregate *invoice.Invoice) error
	Update(ctx context.Context, aggregate *invoice.Invoice) error
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*invoice.Invoice, error)

	// ExistsForOrderVendor reports whether the order already has an invoice for the vendor.
	ExistsForOrderVendor(ctx context.Context, orderID, vendorID kernel.UUID) (bool, error)
}
