package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CartCommandHandler edits session carts. Products must exist in the catalog
// and be active to be added.
type CartCommandHandler struct {
	carts    ports.CartStore
	products ports.ProductRegistry
	now      Clock
}

func NewCartCommandHandler(carts ports.CartStore, products ports.ProductRegistry, now Clock) CartCommandHandler {
	return CartCommandHandler{carts: carts, products: products, now: now}
}

// AddItem adds quantity of the product, merging with an existing line.
func (h CartCommandHandler) AddItem(ctx context.Context, cmd ChangeCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, errs.NewValueIsInvalidError("product")
	}

	return h.change(ctx, cmd.SessionID(), true, func(c *cart.Cart, now time.Time) error {
		return c.AddItem(cmd.ProductID(), cmd.Quantity(), now)
	})
}

// SetQuantity replaces the quantity of a line. Zero removes it.
func (h CartCommandHandler) SetQuantity(ctx context.Context, cmd ChangeCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.change(ctx, cmd.SessionID(), false, func(c *cart.Cart, now time.Time) error {
		return c.SetQuantity(cmd.ProductID(), cmd.Quantity(), now)
	})
}

func (h CartCommandHandler) RemoveItem(ctx context.Context, cmd ChangeCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.change(ctx, cmd.SessionID(), false, func(c *cart.Cart, now time.Time) error {
		return c.RemoveItem(cmd.ProductID(), now)
	})
}

func (h CartCommandHandler) Clear(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.carts.Delete(ctx, cmd.SessionID())
}

func (h CartCommandHandler) change(
	ctx context.Context,
	sessionID string,
	createMissing bool,
	apply func(c *cart.Cart, now time.Time) error,
) (*cart.Cart, error) {
	now := h.now()

	c, err := h.carts.Get(ctx, sessionID)
	if errors.Is(err, errs.ErrObjectNotFound) && createMissing {
		c, err = cart.NewCart(sessionID, now)
	}
	if err != nil {
		return nil, err
	}

	if err = apply(c, now); err != nil {
		return nil, err
	}

	if err = h.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
