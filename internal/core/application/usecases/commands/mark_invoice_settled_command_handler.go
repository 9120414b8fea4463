package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// MarkInvoiceSettledCommandHandler settles an invoice whatever its current
// status. Settling twice overwrites the settled date.
type MarkInvoiceSettledCommandHandler struct {
	uowFactory InvoiceUoWFactory
	publisher  ports.EventPublisher
	now        Clock
	logger     *slog.Logger
}

func NewMarkInvoiceSettledCommandHandler(
	uowFactory InvoiceUoWFactory,
	publisher ports.EventPublisher,
	now Clock,
	logger *slog.Logger,
) MarkInvoiceSettledCommandHandler {
	return MarkInvoiceSettledCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
		logger:     logger.With("component", "mark_invoice_settled_handler"),
	}
}

func (h MarkInvoiceSettledCommandHandler) Handle(ctx context.Context, cmd MarkInvoiceSettledCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvoiceRepository()
	inv, err := repo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	now := h.now()
	settledAt := now
	if cmd.SettledDate() != nil {
		settledAt = *cmd.SettledDate()
	}
	inv.MarkSettled(settledAt, now)

	if err = repo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, h.logger, ports.InvoiceSettled{
		InvoiceID:   inv.ID().String(),
		SettledDate: *inv.SettledDate(),
		OccurredAt:  now,
	})

	return nil
}
