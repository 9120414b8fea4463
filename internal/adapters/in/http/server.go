// Package http is the echo adapter for the shopper and admin APIs.
package http

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
)

type (
	CartCommands interface {
		AddItem(ctx context.Context, cmd commands.ChangeCartCommand) (*cart.Cart, error)
		SetQuantity(ctx context.Context, cmd commands.ChangeCartCommand) (*cart.Cart, error)
		RemoveItem(ctx context.Context, cmd commands.ChangeCartCommand) (*cart.Cart, error)
		Clear(ctx context.Context, cmd commands.ClearCartCommand) error
	}
	CheckoutHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	AdvanceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (commands.OrderTransitionResult, error)
	}
	SetOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetOrderStatusCommand) (commands.OrderTransitionResult, error)
	}
	AddOrderNoteHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrderNoteCommand) error
	}
	GenerateInvoicesHandler interface {
		Handle(ctx context.Context, cmd commands.GenerateInvoicesCommand) (commands.GenerateInvoicesResult, error)
	}
	MarkInvoiceSettledHandler interface {
		Handle(ctx context.Context, cmd commands.MarkInvoiceSettledCommand) error
	}
	GetCartHandler interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (queries.CartView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	ListInvoicesHandler interface {
		Handle(ctx context.Context, query queries.ListInvoicesQuery) ([]queries.InvoiceView, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	Carts              CartCommands
	Checkout           CheckoutHandler
	AdvanceOrderStatus AdvanceOrderStatusHandler
	SetOrderStatus     SetOrderStatusHandler
	AddOrderNote       AddOrderNoteHandler
	GenerateInvoices   GenerateInvoicesHandler
	MarkInvoiceSettled MarkInvoiceSettledHandler
	GetCart            GetCartHandler
	GetOrder           GetOrderHandler
	ListOrders         ListOrdersHandler
	ListInvoices       ListInvoicesHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http_server")}
}
