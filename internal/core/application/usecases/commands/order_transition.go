package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ErrInvoiceGenerationFailed wraps generation errors after the order itself has
// moved to Invoice Issued. The order change is kept; generation can be re-run
// with GenerateInvoicesCommand.
var ErrInvoiceGenerationFailed = errors.New("order moved to invoice issued but invoice generation failed")

// InvoiceGenerationHandler is satisfied by GenerateInvoicesCommandHandler.
type InvoiceGenerationHandler interface {
	Handle(ctx context.Context, cmd GenerateInvoicesCommand) (GenerateInvoicesResult, error)
}

type transitionFunc func(o *order.Order, now time.Time) (from, to order.Status, err error)

// orderTransitioner runs one status change: load, apply, write-if-unchanged,
// commit, announce, and generate invoices when the order reaches Invoice Issued.
type orderTransitioner struct {
	uowFactory OrderUoWFactory
	invoices   InvoiceGenerationHandler
	publisher  ports.EventPublisher
	now        Clock
	logger     *slog.Logger
}

func (t orderTransitioner) run(
	ctx context.Context,
	orderID kernel.UUID,
	actor kernel.Actor,
	apply transitionFunc,
) (OrderTransitionResult, error) {
	o, from, to, err := t.commit(ctx, orderID, apply)
	if err != nil {
		return OrderTransitionResult{}, err
	}

	result := OrderTransitionResult{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		FromStatus:  from,
		ToStatus:    to,
	}

	publish(ctx, t.publisher, t.logger, ports.OrderStatusChanged{
		OrderID:     o.ID().String(),
		OrderNumber: o.Number(),
		FromStatus:  from.String(),
		ToStatus:    to.String(),
		ChangedBy:   actor.UserID(),
		OccurredAt:  o.UpdatedAt(),
	})

	if to != order.InvoiceIssued {
		return result, nil
	}

	generate, err := NewGenerateInvoicesCommand(o.ID())
	if err != nil {
		return result, err
	}

	generated, err := t.invoices.Handle(ctx, generate)
	if err != nil {
		t.logger.ErrorContext(ctx, "Invoice generation failed", "order_id", o.ID().String(), "error", err)
		return result, fmt.Errorf("%w: %w", ErrInvoiceGenerationFailed, err)
	}

	result.InvoiceIDs = generated.InvoiceIDs
	return result, nil
}

func (t orderTransitioner) commit(
	ctx context.Context,
	orderID kernel.UUID,
	apply transitionFunc,
) (*order.Order, order.Status, order.Status, error) {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.Unknown, order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, order.Unknown, order.Unknown, err
	}

	from, to, err := apply(o, t.now())
	if err != nil {
		return nil, order.Unknown, order.Unknown, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, order.Unknown, order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, order.Unknown, order.Unknown, err
	}

	return o, from, to, nil
}
