package seed_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/internal/adapters/in/seed"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
vendors:
  - key: beads
    name: Beads & Co
    phone: "+254 700 000 001"
  - key: closed
    name: Closed Shop
    active: false
products:
  - name: Maasai Necklace
    price: "1500"
    vendor: beads
    category: jewelry
  - id: 7f1b0d8e-4c1a-4b8e-9a51-0f6a2b9d1c11
    name: Gift Wrap
    price: "50.50"
`

type MockCatalogWriter struct{ mock.Mock }

func (m *MockCatalogWriter) SaveVendor(ctx context.Context, v *catalog.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockCatalogWriter) SaveProduct(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func TestParseAndBuild(t *testing.T) {
	// Given
	f, err := seed.Parse(strings.NewReader(catalogYAML))
	require.NoError(t, err)

	// When
	vendors, products, err := f.Build()

	// Then
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	require.Len(t, products, 2)

	assert.Equal(t, "Beads & Co", vendors[0].Name())
	assert.True(t, vendors[0].IsActive())
	assert.False(t, vendors[1].IsActive())
	assert.True(t, vendors[0].ID().IsEqual(kernel.NameUUID("vendor/beads")))

	assert.True(t, products[0].VendorID().IsEqual(vendors[0].ID()))
	assert.Equal(t, "1500", products[0].Price().String())
	assert.Equal(t, "jewelry", products[0].Category())
	assert.True(t, products[1].VendorID().IsZero())
	assert.Equal(t, "7f1b0d8e-4c1a-4b8e-9a51-0f6a2b9d1c11", products[1].ID().String())
}

func TestBuild_IsDeterministic(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(catalogYAML))
	require.NoError(t, err)

	_, first, err := f.Build()
	require.NoError(t, err)
	_, second, err := f.Build()
	require.NoError(t, err)

	assert.True(t, first[0].ID().IsEqual(second[0].ID()))
}

func TestBuild_Errors(t *testing.T) {
	tests := map[string]struct {
		yaml string
		want string
	}{
		"vendor without key": {
			yaml: "vendors:\n  - name: A\n",
			want: "key is required",
		},
		"duplicate vendor key": {
			yaml: "vendors:\n  - key: a\n    name: A\n  - key: a\n    name: B\n",
			want: "duplicate key",
		},
		"unknown vendor": {
			yaml: "products:\n  - name: P\n    price: \"1\"\n    vendor: ghost\n",
			want: "unknown vendor",
		},
		"bad price": {
			yaml: "products:\n  - name: P\n    price: cheap\n",
			want: "price",
		},
		"negative price": {
			yaml: "products:\n  - name: P\n    price: \"-1\"\n",
			want: "amount",
		},
		"bad id": {
			yaml: "products:\n  - id: nope\n    name: P\n    price: \"1\"\n",
			want: "invalid UUID",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := seed.Parse(strings.NewReader(tt.yaml))
			require.NoError(t, err)

			_, _, err = f.Build()

			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("vendors:\n  - key: a\n    colour: red\n"))

	assert.Error(t, err)
}

func TestParse_EmptyFile(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, f.Vendors)
	assert.Empty(t, f.Products)
}

func TestApply(t *testing.T) {
	// Given
	f, err := seed.Parse(strings.NewReader(catalogYAML))
	require.NoError(t, err)

	writer := &MockCatalogWriter{}
	var saved []string
	writer.On("SaveVendor", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = append(saved, "vendor") }).
		Return(nil)
	writer.On("SaveProduct", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = append(saved, "product") }).
		Return(nil)

	// When
	result, err := seed.Apply(t.Context(), writer, f)

	// Then
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Vendors: 2, Products: 2}, result)
	assert.Equal(t, []string{"vendor", "vendor", "product", "product"}, saved)
}

func TestApply_StopsOnWriteError(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(catalogYAML))
	require.NoError(t, err)

	writer := &MockCatalogWriter{}
	writer.On("SaveVendor", mock.Anything, mock.Anything).Return(nil).Once()
	writer.On("SaveVendor", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	result, err := seed.Apply(t.Context(), writer, f)

	assert.ErrorContains(t, err, "db down")
	assert.Equal(t, seed.Result{Vendors: 1}, result)
	writer.AssertNotCalled(t, "SaveProduct", mock.Anything, mock.Anything)
}
