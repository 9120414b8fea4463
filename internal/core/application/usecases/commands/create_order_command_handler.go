package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CreateOrderCommandHandler turns a session cart into a PaymentPending order.
// Each line freezes the product name, price and vendor as the catalog has them
// now. Clearing the cart and building the chat link happen after the order is
// committed and only log on failure.
type CreateOrderCommandHandler struct {
	carts      ports.CartStore
	products   ports.ProductRegistry
	vendors    ports.VendorRegistry
	uowFactory OrderUoWFactory
	handoff    ports.OrderHandoff
	publisher  ports.EventPublisher
	now        Clock
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	carts ports.CartStore,
	products ports.ProductRegistry,
	vendors ports.VendorRegistry,
	uowFactory OrderUoWFactory,
	handoff ports.OrderHandoff,
	publisher ports.EventPublisher,
	now Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		carts:      carts,
		products:   products,
		vendors:    vendors,
		uowFactory: uowFactory,
		handoff:    handoff,
		publisher:  publisher,
		now:        now,
		logger:     logger.With("component", "create_order_handler"),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	c, err := h.carts.Get(ctx, cmd.SessionID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return CreateOrderResult{}, err
	}
	if c == nil || c.IsEmpty() {
		return CreateOrderResult{}, errs.NewValueIsRequiredError("cart items")
	}

	lines, err := h.snapshot(ctx, c.Items())
	if err != nil {
		return CreateOrderResult{}, err
	}

	customer := cmd.Customer()
	placedBy, err := kernel.NewActor(cmd.SessionID(), "", customer.Name())
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := h.now()
	o, err := order.NewOrder(kernel.NewUUID(), customer, lines, placedBy, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.save(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	h.logger.InfoContext(ctx, "Order placed", "order_id", o.ID().String(), "order_number", o.Number())

	if err = h.carts.Delete(ctx, cmd.SessionID()); err != nil {
		h.logger.WarnContext(ctx, "Failed to clear cart", "session_id", cmd.SessionID(), "error", err)
	}

	result := CreateOrderResult{
		OrderID:     o.ID().String(),
		OrderNumber: o.Number(),
		Total:       o.Total().String(),
	}

	link, err := h.handoff.BuildLink(ctx, o)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to build handoff link", "order_id", o.ID().String(), "error", err)
	} else {
		result.HandoffURL = link
	}

	publish(ctx, h.publisher, h.logger, ports.OrderPlaced{
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber,
		Total:       result.Total,
		OccurredAt:  now,
	})

	return result, nil
}

func (h CreateOrderCommandHandler) snapshot(ctx context.Context, items []cart.Item) ([]order.ProductOrder, error) {
	lines := make([]order.ProductOrder, 0, len(items))
	names := make(map[kernel.UUID]string)

	for _, item := range items {
		p, err := h.products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		vendorName, ok := names[p.VendorID()]
		if !ok && !p.VendorID().IsZero() {
			vendorName, err = h.vendorName(ctx, p.VendorID())
			if err != nil {
				return nil, err
			}
			names[p.VendorID()] = vendorName
		}

		line, err := order.NewProductOrder(
			p.ID(),
			item.Quantity,
			order.NewProductSnapshot(p.Name(), p.Price(), order.NewVendorRef(p.VendorID(), vendorName)),
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// vendorName returns "" for a vendor missing from the registry; the invoice
// generator resolves it later.
func (h CreateOrderCommandHandler) vendorName(ctx context.Context, id kernel.UUID) (string, error) {
	v, err := h.vendors.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v.Name(), nil
}

func (h CreateOrderCommandHandler) save(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
