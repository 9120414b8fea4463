package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// VendorRef is a vendor as known to an order. Either part may be missing on
// legacy line items; the invoice generator resolves the gaps.
type VendorRef struct {
	id   kernel.UUID
	name string
}

func NewVendorRef(id kernel.UUID, name string) VendorRef {
	return VendorRef{id: id, name: strings.TrimSpace(name)}
}

func (v VendorRef) ID() kernel.UUID { return v.id }
func (v VendorRef) Name() string    { return v.name }

// HasID reports whether the reference carries a vendor identifier.
func (v VendorRef) HasID() bool {
	return !v.id.IsZero()
}

// IsComplete reports whether both identifier and display name are present.
func (v VendorRef) IsComplete() bool {
	return v.HasID() && v.name != ""
}

// ProductSnapshot freezes the catalog data of a product at checkout time.
type ProductSnapshot struct {
	name   string
	price  kernel.Money
	vendor VendorRef
}

func NewProductSnapshot(name string, price kernel.Money, vendor VendorRef) ProductSnapshot {
	return ProductSnapshot{name: strings.TrimSpace(name), price: price, vendor: vendor}
}

func (p ProductSnapshot) Name() string        { return p.name }
func (p ProductSnapshot) Price() kernel.Money { return p.price }
func (p ProductSnapshot) Vendor() VendorRef   { return p.vendor }

// ProductOrder is one line of an order.
type ProductOrder struct {
	productID kernel.UUID
	quantity  int
	product   ProductSnapshot
}

func NewProductOrder(productID kernel.UUID, quantity int, product ProductSnapshot) (ProductOrder, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if err := errors.Join(productID.Validate(), quantityErr); err != nil {
		return ProductOrder{}, err
	}

	return ProductOrder{
		productID: productID,
		quantity:  quantity,
		product:   product,
	}, nil
}

func (p ProductOrder) ProductID() kernel.UUID   { return p.productID }
func (p ProductOrder) Quantity() int            { return p.quantity }
func (p ProductOrder) Product() ProductSnapshot { return p.product }

// Subtotal is the snapshot price times the quantity.
func (p ProductOrder) Subtotal() kernel.Money {
	return p.product.price.Times(p.quantity)
}
