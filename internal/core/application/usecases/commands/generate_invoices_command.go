package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGenerateInvoicesCommandIsNotConstructed = errors.New(
	"GenerateInvoicesCommand must be created via NewGenerateInvoicesCommand constructor",
)

// GenerateInvoicesCommand asks for the per-vendor invoices of an order that has
// reached Invoice Issued. Running it again only creates invoices still missing.
type GenerateInvoicesCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGenerateInvoicesCommand(orderID kernel.UUID) (GenerateInvoicesCommand, error) {
	if err := orderID.Validate(); err != nil {
		return GenerateInvoicesCommand{}, err
	}
	return GenerateInvoicesCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c GenerateInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoicesCommandIsNotConstructed)
}

func (c GenerateInvoicesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GenerateInvoicesResult lists the invoices created by one run and the vendors
// skipped because they were already invoiced.
type GenerateInvoicesResult struct {
	OrderID        kernel.UUID
	InvoiceIDs     []kernel.UUID
	SkippedVendors []kernel.UUID
}
