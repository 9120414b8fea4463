package catalog

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Product is a catalog entry. VendorID may be zero for products imported
// before vendors were tracked.
type Product struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	vendorID kernel.UUID
	category string
	active   bool
}

func NewProduct(
	id kernel.UUID,
	name string,
	price kernel.Money,
	vendorID kernel.UUID,
	category string,
	active bool,
) (*Product, error) {
	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("product name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Product{
		id:       id,
		name:     name,
		price:    price,
		vendorID: vendorID,
		category: strings.TrimSpace(category),
		active:   active,
	}, nil
}

func (p *Product) ID() kernel.UUID       { return p.id }
func (p *Product) Name() string          { return p.name }
func (p *Product) Price() kernel.Money   { return p.price }
func (p *Product) VendorID() kernel.UUID { return p.vendorID }
func (p *Product) Category() string      { return p.category }
func (p *Product) IsActive() bool        { return p.active }
