package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/invoice"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// UnknownVendorName is the display name of the fallback vendor that receives
// line items whose vendor cannot be resolved.
const UnknownVendorName = "Unknown Vendor"

// UnknownVendorID is the stable identifier of the fallback vendor.
var UnknownVendorID = kernel.NameUUID("unknown-vendor")

// VendorLookup finds a vendor by id.
type VendorLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Vendor, error)
}

// ProductLookup finds a product by id.
type ProductLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}

// VendorGroup is the slice of an order's line items billed to one vendor.
type VendorGroup struct {
	Vendor order.VendorRef
	Lines  []order.ProductOrder
}

// InvoiceGenerator splits an order into one invoice per vendor.
//
// The vendor of each line item is resolved in this order:
//  1. the vendor embedded on the line, when it has both id and name;
//  2. the order's vendor list, matched by id;
//  3. the vendor registry, by the line's vendor id or, when the line has none,
//     by the vendor of the product in the product registry;
//  4. the UnknownVendorID / UnknownVendorName fallback.
//
// Registry misses fall through to the next step. Any other registry error aborts.
type InvoiceGenerator struct {
	vendors  VendorLookup
	products ProductLookup
}

func NewInvoiceGenerator(vendors VendorLookup, products ProductLookup) InvoiceGenerator {
	return InvoiceGenerator{vendors: vendors, products: products}
}

// Generate builds, without persisting, one invoice per vendor group of o,
// issued at issuedAt. Groups keep the order in which vendors first appear.
func (g InvoiceGenerator) Generate(ctx context.Context, o *order.Order, issuedAt time.Time) ([]*invoice.Invoice, error) {
	groups, err := g.Partition(ctx, o)
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(groups))
	for _, group := range groups {
		items := make([]invoice.Item, 0, len(group.Lines))
		for _, line := range group.Lines {
			item, itemErr := invoice.NewItem(
				line.ProductID(),
				line.Product().Name(),
				line.Quantity(),
				line.Product().Price(),
			)
			if itemErr != nil {
				return nil, itemErr
			}
			items = append(items, item)
		}

		inv, invErr := invoice.NewInvoice(
			kernel.NewUUID(),
			o.ID(),
			group.Vendor.ID(),
			group.Vendor.Name(),
			o.Customer(),
			items,
			issuedAt,
		)
		if invErr != nil {
			return nil, fmt.Errorf("build invoice for vendor %s: %w", group.Vendor.ID(), invErr)
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// Partition groups the order's line items by resolved vendor.
func (g InvoiceGenerator) Partition(ctx context.Context, o *order.Order) ([]VendorGroup, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	known := make(map[kernel.UUID]string)
	for _, v := range o.Vendors() {
		if v.HasID() && v.Name() != "" {
			known[v.ID()] = v.Name()
		}
	}

	var groups []VendorGroup
	index := make(map[kernel.UUID]int)

	for _, line := range o.ProductOrders() {
		vendor, err := g.resolveVendor(ctx, line, known)
		if err != nil {
			return nil, err
		}

		i, ok := index[vendor.ID()]
		if !ok {
			i = len(groups)
			index[vendor.ID()] = i
			groups = append(groups, VendorGroup{Vendor: vendor})
		}
		groups[i].Lines = append(groups[i].Lines, line)
	}

	return groups, nil
}

func (g InvoiceGenerator) resolveVendor(
	ctx context.Context,
	line order.ProductOrder,
	known map[kernel.UUID]string,
) (order.VendorRef, error) {
	embedded := line.Product().Vendor()
	if embedded.IsComplete() {
		return embedded, nil
	}

	if embedded.HasID() {
		if name, ok := known[embedded.ID()]; ok {
			return order.NewVendorRef(embedded.ID(), name), nil
		}
	}

	vendorID := embedded.ID()
	if !embedded.HasID() {
		product, err := g.products.Get(ctx, line.ProductID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return order.VendorRef{}, fmt.Errorf("look up product %s: %w", line.ProductID(), err)
		}
		if product == nil || product.VendorID().IsZero() {
			return unknownVendor(), nil
		}
		vendorID = product.VendorID()
		if name, ok := known[vendorID]; ok {
			return order.NewVendorRef(vendorID, name), nil
		}
	}

	vendor, err := g.vendors.Get(ctx, vendorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return unknownVendor(), nil
	}
	if err != nil {
		return order.VendorRef{}, fmt.Errorf("look up vendor %s: %w", vendorID, err)
	}

	known[vendor.ID()] = vendor.Name()
	return order.NewVendorRef(vendor.ID(), vendor.Name()), nil
}

func unknownVendor() order.VendorRef {
	return order.NewVendorRef(UnknownVendorID, UnknownVendorName)
}
