package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add stores a newly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate only if the stored version still equals
	// aggregate.Version(); otherwise it returns an errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus returns the orders currently in status, oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
