package cart

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// MaxItemQuantity caps a single cart line.
const MaxItemQuantity = 99

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Item is a product and the quantity the shopper wants.
type Item struct {
	ProductID kernel.UUID
	Quantity  int
}

// Cart is the shopping cart of one browsing session. It is loaded from and
// saved back to a CartStore by the caller that owns the session.
type Cart struct {
	sessionID string
	items     []Item
	updatedAt time.Time

	isConstructed bool
}

func NewCart(sessionID string, now time.Time) (*Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("session id")
	}
	return &Cart{sessionID: sessionID, updatedAt: now.UTC(), isConstructed: true}, nil
}

func RestoreCart(sessionID string, items []Item, updatedAt time.Time) (*Cart, error) {
	c, err := NewCart(sessionID, updatedAt)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err = validateQuantity(item.Quantity); err != nil {
			return nil, err
		}
	}
	c.items = slices.Clone(items)
	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) SessionID() string    { return c.sessionID }
func (c *Cart) Items() []Item        { return slices.Clone(c.items) }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }
func (c *Cart) IsEmpty() bool        { return len(c.items) == 0 }

// AddItem adds quantity to the product's line, creating it when absent.
func (c *Cart) AddItem(productID kernel.UUID, quantity int, now time.Time) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if i := c.indexOf(productID); i >= 0 {
		return c.setAt(i, c.items[i].Quantity+quantity, now)
	}

	if err := validateQuantity(quantity); err != nil {
		return err
	}
	c.items = append(c.items, Item{ProductID: productID, Quantity: quantity})
	c.updatedAt = now.UTC()
	return nil
}

// SetQuantity overwrites the product's quantity; zero removes the line.
func (c *Cart) SetQuantity(productID kernel.UUID, quantity int, now time.Time) error {
	i := c.indexOf(productID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart item", productID.String())
	}
	if quantity == 0 {
		c.items = slices.Delete(c.items, i, i+1)
		c.updatedAt = now.UTC()
		return nil
	}
	return c.setAt(i, quantity, now)
}

func (c *Cart) RemoveItem(productID kernel.UUID, now time.Time) error {
	return c.SetQuantity(productID, 0, now)
}

func (c *Cart) Clear(now time.Time) {
	c.items = nil
	c.updatedAt = now.UTC()
}

func (c *Cart) setAt(i, quantity int, now time.Time) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	c.items[i].Quantity = quantity
	c.updatedAt = now.UTC()
	return nil
}

func (c *Cart) indexOf(productID kernel.UUID) int {
	return slices.IndexFunc(c.items, func(item Item) bool {
		return item.ProductID.IsEqual(productID)
	})
}

func validateQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	return nil
}
