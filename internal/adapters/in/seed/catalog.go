// Package seed loads vendors and products from a YAML catalog file into the
// catalog tables. Identifiers left empty in the file are derived from the vendor
// key and product name, so loading the same file twice updates rows in place.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type File struct {
	Vendors  []VendorEntry  `yaml:"vendors"`
	Products []ProductEntry `yaml:"products"`
}

type VendorEntry struct {
	Key    string `yaml:"key"`
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Phone  string `yaml:"phone"`
	Active *bool  `yaml:"active"`
}

type ProductEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Vendor   string `yaml:"vendor"`
	Category string `yaml:"category"`
	Active   *bool  `yaml:"active"`
}

// Result counts what Apply wrote.
type Result struct {
	Vendors  int
	Products int
}

// Parse decodes a catalog file. Unknown fields are rejected.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("invalid catalog file: %w", err)
	}
	return f, nil
}

// Build converts the file into domain objects without writing anything.
func (f File) Build() ([]*catalog.Vendor, []*catalog.Product, error) {
	vendorIDs := make(map[string]kernel.UUID, len(f.Vendors))
	vendors := make([]*catalog.Vendor, 0, len(f.Vendors))
	for i, entry := range f.Vendors {
		key := strings.TrimSpace(entry.Key)
		if key == "" {
			return nil, nil, fmt.Errorf("vendors[%d]: key is required", i)
		}
		if _, dup := vendorIDs[key]; dup {
			return nil, nil, fmt.Errorf("vendors[%d]: duplicate key %q", i, key)
		}

		id, err := entryID(entry.ID, "vendor/"+key)
		if err != nil {
			return nil, nil, fmt.Errorf("vendors[%d]: %w", i, err)
		}
		v, err := catalog.NewVendor(id, entry.Name, entry.Phone, isActive(entry.Active))
		if err != nil {
			return nil, nil, fmt.Errorf("vendors[%d]: %w", i, err)
		}
		vendorIDs[key] = id
		vendors = append(vendors, v)
	}

	products := make([]*catalog.Product, 0, len(f.Products))
	for i, entry := range f.Products {
		p, err := entry.build(vendorIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		products = append(products, p)
	}

	return vendors, products, nil
}

func (e ProductEntry) build(vendorIDs map[string]kernel.UUID) (*catalog.Product, error) {
	id, err := entryID(e.ID, "product/"+strings.TrimSpace(e.Name))
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(e.Price))
	if err != nil {
		return nil, fmt.Errorf("price %q: %w", e.Price, err)
	}
	price, err := kernel.NewMoney(amount)
	if err != nil {
		return nil, err
	}

	var vendorID kernel.UUID
	if key := strings.TrimSpace(e.Vendor); key != "" {
		var ok bool
		if vendorID, ok = vendorIDs[key]; !ok {
			return nil, fmt.Errorf("unknown vendor %q", key)
		}
	}

	return catalog.NewProduct(id, e.Name, price, vendorID, e.Category, isActive(e.Active))
}

// Apply writes every vendor before any product.
func Apply(ctx context.Context, writer ports.CatalogWriter, f File) (Result, error) {
	vendors, products, err := f.Build()
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, v := range vendors {
		if err = writer.SaveVendor(ctx, v); err != nil {
			return result, fmt.Errorf("save vendor %s: %w", v.Name(), err)
		}
		result.Vendors++
	}
	for _, p := range products {
		if err = writer.SaveProduct(ctx, p); err != nil {
			return result, fmt.Errorf("save product %s: %w", p.Name(), err)
		}
		result.Products++
	}

	return result, nil
}

func entryID(raw, name string) (kernel.UUID, error) {
	if raw = strings.TrimSpace(raw); raw != "" {
		return kernel.UUIDFromString(raw)
	}
	return kernel.NameUUID(name), nil
}

func isActive(v *bool) bool {
	return v == nil || *v
}
