package http_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"

	"github.com/stretchr/testify/mock"
)

type MockCartCommands struct{ mock.Mock }

func (m *MockCartCommands) AddItem(ctx context.Context, cmd commands.ChangeCartCommand) (*cart.Cart, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}
func (m *MockCartCommands) SetQuantity(ctx context.Context, cmd commands.ChangeCartCommand) (*cart.Cart, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}
func (m *MockCartCommands) RemoveItem(ctx context.Context, cmd commands.ChangeCartCommand) (*cart.Cart, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}
func (m *MockCartCommands) Clear(ctx context.Context, cmd commands.ClearCartCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCheckout struct{ mock.Mock }

func (m *MockCheckout) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockAdvance struct{ mock.Mock }

func (m *MockAdvance) Handle(
	ctx context.Context,
	cmd commands.AdvanceOrderStatusCommand,
) (commands.OrderTransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderTransitionResult), args.Error(1)
}

type MockSetStatus struct{ mock.Mock }

func (m *MockSetStatus) Handle(
	ctx context.Context,
	cmd commands.SetOrderStatusCommand,
) (commands.OrderTransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderTransitionResult), args.Error(1)
}

type MockAddNote struct{ mock.Mock }

func (m *MockAddNote) Handle(ctx context.Context, cmd commands.AddOrderNoteCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGenerateInvoices struct{ mock.Mock }

func (m *MockGenerateInvoices) Handle(
	ctx context.Context,
	cmd commands.GenerateInvoicesCommand,
) (commands.GenerateInvoicesResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.GenerateInvoicesResult), args.Error(1)
}

type MockSettle struct{ mock.Mock }

func (m *MockSettle) Handle(ctx context.Context, cmd commands.MarkInvoiceSettledCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetCart struct{ mock.Mock }

func (m *MockGetCart) Handle(ctx context.Context, query queries.GetCartQuery) (queries.CartView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CartView), args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderDetails), args.Error(1)
}

type MockListOrders struct{ mock.Mock }

func (m *MockListOrders) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderSummary)
	return orders, args.Error(1)
}

type MockListInvoices struct{ mock.Mock }

func (m *MockListInvoices) Handle(ctx context.Context, query queries.ListInvoicesQuery) ([]queries.InvoiceView, error) {
	args := m.Called(ctx, query)
	invoices, _ := args.Get(0).([]queries.InvoiceView)
	return invoices, args.Error(1)
}
