package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderHandoff turns a placed order into a link that opens a chat with the
// business, pre-filled with the order summary.
type OrderHandoff interface {
	BuildLink(ctx context.Context, o *order.Order) (string, error)
}
