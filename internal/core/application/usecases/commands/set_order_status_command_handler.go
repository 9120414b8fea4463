package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// SetOrderStatusCommandHandler behaves like AdvanceOrderStatusCommandHandler but
// fails with errs.ErrValueIsInvalid when the requested status is not the next one.
type SetOrderStatusCommandHandler struct {
	transitioner orderTransitioner
}

func NewSetOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	invoices InvoiceGenerationHandler,
	publisher ports.EventPublisher,
	now Clock,
	logger *slog.Logger,
) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		transitioner: orderTransitioner{
			uowFactory: uowFactory,
			invoices:   invoices,
			publisher:  publisher,
			now:        now,
			logger:     logger.With("component", "set_order_status_handler"),
		},
	}
}

func (h SetOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd SetOrderStatusCommand,
) (OrderTransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderTransitionResult{}, err
	}

	return h.transitioner.run(ctx, cmd.OrderID(), cmd.Actor(),
		func(o *order.Order, now time.Time) (order.Status, order.Status, error) {
			return o.AdvanceTo(cmd.Target(), cmd.Actor(), cmd.Notes(), now)
		})
}
