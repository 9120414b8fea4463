package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError("Customer must be created via NewCustomer")

// Customer is the contact block captured at checkout. It is copied verbatim onto
// every invoice generated for the order.
type Customer struct {
	name         string
	phone        string
	deliveryArea string
	deliverySlot string
	notes        string
	guard        guard.ConstructorGuard
}

func NewCustomer(name, phone, deliveryArea, deliverySlot, notes string) (Customer, error) {
	c := Customer{
		deliveryArea: strings.TrimSpace(deliveryArea),
		deliverySlot: strings.TrimSpace(deliverySlot),
		notes:        strings.TrimSpace(notes),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Name() string         { return c.name }
func (c Customer) Phone() string        { return c.phone }
func (c Customer) DeliveryArea() string { return c.deliveryArea }
func (c Customer) DeliverySlot() string { return c.deliverySlot }
func (c Customer) Notes() string        { return c.notes }

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}
