package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrFindOrdersMissingInvoicesQueryIsNotConstructed = errors.New(
	"FindOrdersMissingInvoicesQuery must be created via NewFindOrdersMissingInvoicesQuery constructor",
)

// FindOrdersMissingInvoicesQuery finds orders in Invoice Issued for which at
// least one vendor has no invoice yet.
type FindOrdersMissingInvoicesQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewFindOrdersMissingInvoicesQuery caps the result at limit; limit <= 0 means no cap.
func NewFindOrdersMissingInvoicesQuery(limit int) FindOrdersMissingInvoicesQuery {
	return FindOrdersMissingInvoicesQuery{limit: max(limit, 0), guard: guard.NewConstructorGuard()}
}

func (q FindOrdersMissingInvoicesQuery) Limit() int { return q.limit }

func (q FindOrdersMissingInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersMissingInvoicesQueryIsNotConstructed)
}
