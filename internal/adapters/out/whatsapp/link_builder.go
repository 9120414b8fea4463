// Package whatsapp builds click-to-chat links that hand a placed order over to
// the business on WhatsApp.
package whatsapp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

const baseURL = "https://wa.me/"

// LinkBuilder implements ports.OrderHandoff.
type LinkBuilder struct {
	phone string
}

// NewLinkBuilder keeps only the digits of businessPhone, as wa.me expects the
// number in international format without '+', spaces or dashes.
func NewLinkBuilder(businessPhone string) LinkBuilder {
	return LinkBuilder{phone: digits(businessPhone)}
}

func (b LinkBuilder) BuildLink(_ context.Context, o *order.Order) (string, error) {
	if b.phone == "" {
		return "", errs.NewValueIsRequiredError("business phone")
	}
	if err := o.Validate(); err != nil {
		return "", err
	}

	return baseURL + b.phone + "?text=" + url.QueryEscape(Summary(o)), nil
}

// Summary renders the order as the pre-filled chat message.
func Summary(o *order.Order) string {
	var sb strings.Builder
	customer := o.Customer()

	fmt.Fprintf(&sb, "New order %s\n", o.Number())
	for _, po := range o.ProductOrders() {
		fmt.Fprintf(&sb, "- %d x %s @ %s = %s\n",
			po.Quantity(), po.Product().Name(), po.Product().Price(), po.Subtotal())
	}
	fmt.Fprintf(&sb, "Total: %s\n", o.Total())
	fmt.Fprintf(&sb, "Name: %s\nPhone: %s\n", customer.Name(), customer.Phone())
	if customer.DeliveryArea() != "" {
		fmt.Fprintf(&sb, "Area: %s\n", customer.DeliveryArea())
	}
	if customer.DeliverySlot() != "" {
		fmt.Fprintf(&sb, "Slot: %s\n", customer.DeliverySlot())
	}
	if customer.Notes() != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", customer.Notes())
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
