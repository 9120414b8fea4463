package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}
func (m *MockCartStore) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCartStore) Delete(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
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

func newProduct(t *testing.T, name string, price int64, active bool) *catalog.Product {
	t.Helper()
	money, err := kernel.MoneyFromInt(price)
	require.NoError(t, err)
	p, err := catalog.NewProduct(kernel.NewUUID(), name, money, vendorA, "fruit", active)
	require.NoError(t, err)
	return p
}

func TestGetCartQueryHandler_Handle(t *testing.T) {
	updatedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("prices lines from the catalog", func(t *testing.T) {
		// Given
		mango := newProduct(t, "Mango", 10000, true)
		retired := newProduct(t, "Old honey", 50000, false)
		gone := kernel.NewUUID()

		c, err := cart.RestoreCart("s-1", []cart.Item{
			{ProductID: mango.ID(), Quantity: 3},
			{ProductID: retired.ID(), Quantity: 1},
			{ProductID: gone, Quantity: 2},
		}, updatedAt)
		require.NoError(t, err)

		carts := new(MockCartStore)
		products := new(MockProductRegistry)
		carts.On("Get", mock.Anything, "s-1").Return(c, nil)
		products.On("Get", mock.Anything, mango.ID()).Return(mango, nil)
		products.On("Get", mock.Anything, retired.ID()).Return(retired, nil)
		products.On("Get", mock.Anything, gone).Return(nil, errs.NewObjectNotFoundError("product", gone))

		query, err := queries.NewGetCartQuery("s-1")
		require.NoError(t, err)

		// When
		view, err := queries.NewGetCartQueryHandler(carts, products).Handle(t.Context(), query)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "s-1", view.SessionID)
		assert.Equal(t, updatedAt, view.UpdatedAt)
		require.Len(t, view.Lines, 3)

		assert.True(t, view.Lines[0].Available)
		assert.Equal(t, "Mango", view.Lines[0].Name)
		assert.Equal(t, "30000", view.Lines[0].Subtotal.String())

		assert.False(t, view.Lines[1].Available)
		assert.True(t, view.Lines[1].Subtotal.IsZero())

		assert.False(t, view.Lines[2].Available)
		assert.Empty(t, view.Lines[2].Name)

		assert.Equal(t, "30000", view.Total.String())
		carts.AssertExpectations(t)
		products.AssertExpectations(t)
	})

	t.Run("missing cart is empty", func(t *testing.T) {
		carts := new(MockCartStore)
		carts.On("Get", mock.Anything, "s-2").Return(nil, errs.NewObjectNotFoundError("cart", "s-2"))

		query, err := queries.NewGetCartQuery("s-2")
		require.NoError(t, err)

		view, err := queries.NewGetCartQueryHandler(carts, new(MockProductRegistry)).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.NotNil(t, view.Lines)
		assert.Empty(t, view.Lines)
		assert.True(t, view.Total.IsZero())
	})

	t.Run("store failure is returned", func(t *testing.T) {
		boom := errors.New("redis down")
		carts := new(MockCartStore)
		carts.On("Get", mock.Anything, "s-3").Return(nil, boom)

		query, err := queries.NewGetCartQuery("s-3")
		require.NoError(t, err)

		_, err = queries.NewGetCartQueryHandler(carts, new(MockProductRegistry)).Handle(t.Context(), query)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("zero value query is rejected", func(t *testing.T) {
		_, err := queries.NewGetCartQueryHandler(new(MockCartStore), new(MockProductRegistry)).
			Handle(t.Context(), queries.GetCartQuery{})

		assert.ErrorIs(t, err, queries.ErrGetCartQueryIsNotConstructed)
	})
}

func TestNewGetCartQuery_RequiresSession(t *testing.T) {
	_, err := queries.NewGetCartQuery("   ")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
