package queries

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")

// ListOrdersQuery lists orders newest first, optionally restricted to one status.
type ListOrdersQuery struct {
	status *order.Status
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery returns all orders when status is nil.
func NewListOrdersQuery(status *order.Status) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		s := *status
		status = &s
	}
	return ListOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
