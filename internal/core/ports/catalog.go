package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
)

// VendorRegistry is the read side of vendor reference data.
type VendorRegistry interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Vendor, error)
	ListActive(ctx context.Context) ([]*catalog.Vendor, error)
}

// ProductRegistry is the read side of product reference data.
type ProductRegistry interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
	List(ctx context.Context) ([]*catalog.Product, error)
}

// CatalogWriter upserts reference data, used by the seed command.
type CatalogWriter interface {
	SaveVendor(ctx context.Context, vendor *catalog.Vendor) error
	SaveProduct(ctx context.Context, product *catalog.Product) error
}
