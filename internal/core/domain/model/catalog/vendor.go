package catalog

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Vendor is a seller whose products appear in orders.
type Vendor struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool
}

func NewVendor(id kernel.UUID, name, phone string, active bool) (*Vendor, error) {
	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("vendor name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Vendor{
		id:     id,
		name:   name,
		phone:  strings.TrimSpace(phone),
		active: active,
	}, nil
}

func (v *Vendor) ID() kernel.UUID { return v.id }
func (v *Vendor) Name() string    { return v.name }
func (v *Vendor) Phone() string   { return v.phone }
func (v *Vendor) IsActive() bool  { return v.active }
