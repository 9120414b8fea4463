// Package catalogrepo stores the vendor and product reference data that
// checkout and invoice generation resolve against.
package catalogrepo

import (
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Phone     string
	Active    bool `gorm:"not null;index"`
	UpdatedAt time.Time
}

func (VendorDTO) TableName() string {
	return "vendors"
}

type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	VendorID  *uuid.UUID      `gorm:"type:uuid;index"`
	Category  string
	Active    bool `gorm:"not null"`
	UpdatedAt time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func vendorFromDomain(v *catalog.Vendor) VendorDTO {
	return VendorDTO{
		ID:     v.ID().Bytes(),
		Name:   v.Name(),
		Phone:  v.Phone(),
		Active: v.IsActive(),
	}
}

func vendorToDomain(dto VendorDTO) (*catalog.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewVendor(id, dto.Name, dto.Phone, dto.Active)
}

func productFromDomain(p *catalog.Product) ProductDTO {
	dto := ProductDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		Price:    p.Price().Decimal(),
		Category: p.Category(),
		Active:   p.IsActive(),
	}
	if !p.VendorID().IsZero() {
		vendorID := p.VendorID().Bytes()
		dto.VendorID = &vendorID
	}
	return dto
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var vendorID kernel.UUID
	if dto.VendorID != nil {
		if vendorID, err = kernel.UUIDFromBytes(dto.VendorID[:]); err != nil {
			return nil, err
		}
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(id, dto.Name, price, vendorID, dto.Category, dto.Active)
}
