package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler is the status-update action of the admin
// order screen.
//
// Failures before the order write leave the order untouched: a missing order
// returns errs.ErrObjectNotFound, a settled order order.ErrNoTransitionAvailable
// and a concurrent change errs.ErrVersionIsInvalid. When the order reaches
// Invoice Issued, invoices are generated before Handle returns; if that fails the
// result still describes the committed transition and the error wraps
// ErrInvoiceGenerationFailed.
type AdvanceOrderStatusCommandHandler struct {
	transitioner orderTransitioner
}

func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	invoices InvoiceGenerationHandler,
	publisher ports.EventPublisher,
	now Clock,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		transitioner: orderTransitioner{
			uowFactory: uowFactory,
			invoices:   invoices,
			publisher:  publisher,
			now:        now,
			logger:     logger.With("component", "advance_order_status_handler"),
		},
	}
}

func (h AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (OrderTransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderTransitionResult{}, err
	}

	return h.transitioner.run(ctx, cmd.OrderID(), cmd.Actor(),
		func(o *order.Order, now time.Time) (order.Status, order.Status, error) {
			return o.Advance(cmd.Actor(), cmd.Notes(), now)
		})
}
