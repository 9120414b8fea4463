package commands

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrMarkInvoiceSettledCommandIsNotConstructed = errors.New(
	"MarkInvoiceSettledCommand must be created via NewMarkInvoiceSettledCommand constructor",
)

// MarkInvoiceSettledCommand records that a vendor invoice was paid. A nil
// settledDate means the invoice is settled at handling time.
type MarkInvoiceSettledCommand struct {
	invoiceID   kernel.UUID
	settledDate *time.Time

	guard guard.ConstructorGuard
}

func NewMarkInvoiceSettledCommand(invoiceID kernel.UUID, settledDate *time.Time) (MarkInvoiceSettledCommand, error) {
	if err := invoiceID.Validate(); err != nil {
		return MarkInvoiceSettledCommand{}, err
	}

	return MarkInvoiceSettledCommand{
		invoiceID:   invoiceID,
		settledDate: settledDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c MarkInvoiceSettledCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoiceSettledCommandIsNotConstructed)
}

func (c MarkInvoiceSettledCommand) InvoiceID() kernel.UUID  { return c.invoiceID }
func (c MarkInvoiceSettledCommand) SettledDate() *time.Time { return c.settledDate }
