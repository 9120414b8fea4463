package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/invoice"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow  = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	fixedTime = func() time.Time { return fixedNow }

	vendorA = kernel.NameUUID("vendor-a")
	vendorB = kernel.NameUUID("vendor-b")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)
	return actor
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Asha", "+254700000001", "Westlands", "Morning", "")
	require.NoError(t, err)
	return customer
}

// testOrder returns an order in status with lines of vendor A (2 x 10000) and
// vendor B (1 x 50000).
func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	line := func(vendor kernel.UUID, vendorName, name string, qty int, price int64) order.ProductOrder {
		money, err := kernel.MoneyFromInt(price)
		require.NoError(t, err)
		po, err := order.NewProductOrder(
			kernel.NewUUID(),
			qty,
			order.NewProductSnapshot(name, money, order.NewVendorRef(vendor, vendorName)),
		)
		require.NoError(t, err)
		return po
	}

	id := kernel.NewUUID()
	o, err := order.RestoreOrder(
		id,
		kernel.NewDocumentNumber(kernel.OrderNumberPrefix, id, fixedNow),
		status,
		testCustomer(t),
		[]order.ProductOrder{
			line(vendorA, "Vendor A", "Mango", 2, 10000),
			line(vendorB, "Vendor B", "Honey", 1, 50000),
		},
		[]order.VendorRef{order.NewVendorRef(vendorA, "Vendor A"), order.NewVendorRef(vendorB, "Vendor B")},
		nil,
		fixedNow,
		fixedNow,
		1,
	)
	require.NoError(t, err)
	return o
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}
func (m *MockInvoiceRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, orderID)
	invoices, _ := args.Get(0).([]*invoice.Invoice)
	return invoices, args.Error(1)
}
func (m *MockInvoiceRepository) ExistsForOrderVendor(ctx context.Context, orderID, vendorID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, vendorID)
	return args.Bool(0), args.Error(1)
}

// MockUoW implements every unit-of-work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockInvoiceGeneration struct{ mock.Mock }

func (m *MockInvoiceGeneration) Handle(
	ctx context.Context,
	cmd commands.GenerateInvoicesCommand,
) (commands.GenerateInvoicesResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.GenerateInvoicesResult), args.Error(1)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}
func (m *MockCartStore) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockProductRegistry struct{ mock.Mock }

func (m *MockProductRegistry) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}
func (m *MockProductRegistry) List(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*catalog.Product)
	return products, args.Error(1)
}

type MockVendorRegistry struct{ mock.Mock }

func (m *MockVendorRegistry) Get(ctx context.Context, id kernel.UUID) (*catalog.Vendor, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*catalog.Vendor)
	return v, args.Error(1)
}
func (m *MockVendorRegistry) ListActive(ctx context.Context) ([]*catalog.Vendor, error) {
	args := m.Called(ctx)
	vendors, _ := args.Get(0).([]*catalog.Vendor)
	return vendors, args.Error(1)
}

type MockOrderHandoff struct{ mock.Mock }

func (m *MockOrderHandoff) BuildLink(ctx context.Context, o *order.Order) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}

func newInactiveProduct(price kernel.Money) (*catalog.Product, error) {
	return catalog.NewProduct(kernel.NewUUID(), "Seasonal Jam", price, vendorA, "Pantry", false)
}
