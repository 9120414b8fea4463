package catalogrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.VendorRegistry, ports.ProductRegistry
// and ports.CatalogWriter over the vendors and products tables.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Vendors and Products expose the repository through the narrower registry
// ports, whose Get methods would otherwise collide.
func (r *GormCatalogRepository) Vendors() VendorRegistry   { return VendorRegistry{r} }
func (r *GormCatalogRepository) Products() ProductRegistry { return ProductRegistry{r} }

type VendorRegistry struct{ repo *GormCatalogRepository }

func (v VendorRegistry) Get(ctx context.Context, id kernel.UUID) (*catalog.Vendor, error) {
	return v.repo.GetVendor(ctx, id)
}

func (v VendorRegistry) ListActive(ctx context.Context) ([]*catalog.Vendor, error) {
	return v.repo.ListActiveVendors(ctx)
}

type ProductRegistry struct{ repo *GormCatalogRepository }

func (p ProductRegistry) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	return p.repo.GetProduct(ctx, id)
}

func (p ProductRegistry) List(ctx context.Context) ([]*catalog.Product, error) {
	return p.repo.ListProducts(ctx)
}

func (r *GormCatalogRepository) GetVendor(ctx context.Context, id kernel.UUID) (*catalog.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return nil, err
	}

	return vendorToDomain(dto)
}

func (r *GormCatalogRepository) ListActiveVendors(ctx context.Context) ([]*catalog.Vendor, error) {
	var dtos []VendorDTO
	if err := r.db.WithContext(ctx).Where("active").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vendors := make([]*catalog.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		v, err := vendorToDomain(dto)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// ListProducts returns the whole catalog, inactive products included, by name.
func (r *GormCatalogRepository) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// SaveVendor inserts the vendor or overwrites the row with the same id.
func (r *GormCatalogRepository) SaveVendor(ctx context.Context, vendor *catalog.Vendor) error {
	dto := vendorFromDomain(vendor)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "active", "updated_at"}),
		}).
		Create(&dto).Error
}

func (r *GormCatalogRepository) SaveProduct(ctx context.Context, product *catalog.Product) error {
	dto := productFromDomain(product)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "vendor_id", "category", "active", "updated_at"}),
		}).
		Create(&dto).Error
}
