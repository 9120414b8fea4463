package queries

import (
	"context"
	"errors"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// GetCartQueryHandler reads the session cart from the cart store and prices it
// against the product registry. A session without a cart gets an empty view.
type GetCartQueryHandler struct {
	carts    ports.CartStore
	products ports.ProductRegistry
}

func NewGetCartQueryHandler(carts ports.CartStore, products ports.ProductRegistry) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts, products: products}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	view := CartView{SessionID: query.SessionID(), Lines: make([]CartLineView, 0), Total: decimal.Zero}

	c, err := h.carts.Get(ctx, query.SessionID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return view, nil
	}
	if err != nil {
		return CartView{}, err
	}
	view.UpdatedAt = c.UpdatedAt()

	for _, item := range c.Items() {
		line := CartLineView{ProductID: item.ProductID, Quantity: item.Quantity, Subtotal: decimal.Zero}

		product, getErr := h.products.Get(ctx, item.ProductID)
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
		case getErr != nil:
			return CartView{}, getErr
		default:
			line.Name = product.Name()
			line.VendorID = product.VendorID()
			line.Price = product.Price().Decimal()
			line.Available = product.IsActive()
			if line.Available {
				line.Subtotal = product.Price().Times(item.Quantity).Decimal()
				view.Total = view.Total.Add(line.Subtotal)
			}
		}

		view.Lines = append(view.Lines, line)
	}

	return view, nil
}
