package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
)

// CartStore keeps one cart per browsing session.
type CartStore interface {
	// Get returns errs.ObjectNotFoundError when the session has no cart.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
