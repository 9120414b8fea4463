package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GenerateInvoicesCommandHandler persists the invoices produced by
// services.InvoiceGenerator. All invoices of one run are written in a single
// transaction, and a vendor that already has an invoice for the order is skipped.
type GenerateInvoicesCommandHandler struct {
	uowFactory UoWFactory
	generator  services.InvoiceGenerator
	publisher  ports.EventPublisher
	now        Clock
	logger     *slog.Logger
}

func NewGenerateInvoicesCommandHandler(
	uowFactory UoWFactory,
	generator services.InvoiceGenerator,
	publisher ports.EventPublisher,
	now Clock,
	logger *slog.Logger,
) GenerateInvoicesCommandHandler {
	return GenerateInvoicesCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		publisher:  publisher,
		now:        now,
		logger:     logger.With("component", "generate_invoices_handler"),
	}
}

func (h GenerateInvoicesCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateInvoicesCommand,
) (GenerateInvoicesResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateInvoicesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GenerateInvoicesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return GenerateInvoicesResult{}, err
	}

	if o.Status() < order.InvoiceIssued {
		return GenerateInvoicesResult{}, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("invoices are issued from %s, order %s is %s", order.InvoiceIssued, o.Number(), o.Status()),
		)
	}

	issuedAt := h.now()
	invoices, err := h.generator.Generate(ctx, o, issuedAt)
	if err != nil {
		return GenerateInvoicesResult{}, err
	}

	result := GenerateInvoicesResult{OrderID: o.ID()}
	invoiceRepo := uow.InvoiceRepository()
	for _, inv := range invoices {
		exists, existsErr := invoiceRepo.ExistsForOrderVendor(ctx, o.ID(), inv.VendorID())
		if existsErr != nil {
			return GenerateInvoicesResult{}, existsErr
		}
		if exists {
			result.SkippedVendors = append(result.SkippedVendors, inv.VendorID())
			continue
		}

		if err = invoiceRepo.Add(ctx, inv); err != nil {
			return GenerateInvoicesResult{}, err
		}
		result.InvoiceIDs = append(result.InvoiceIDs, inv.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return GenerateInvoicesResult{}, err
	}

	if len(result.InvoiceIDs) > 0 {
		publish(ctx, h.publisher, h.logger, ports.InvoicesIssued{
			OrderID:    o.ID().String(),
			InvoiceIDs: uuidStrings(result.InvoiceIDs),
			OccurredAt: issuedAt,
		})
	}

	return result, nil
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
