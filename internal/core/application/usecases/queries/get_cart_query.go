package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery constructor")

type GetCartQuery struct {
	sessionID string
	guard     guard.ConstructorGuard
}

func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("sessionID")
	}
	return GetCartQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) SessionID() string { return q.sessionID }

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartLineView is a cart item priced from the current catalog. Lines whose
// product is gone or inactive are returned with Available false and do not
// count towards the total.
type CartLineView struct {
	ProductID kernel.UUID
	Name      string
	VendorID  kernel.UUID
	Price     decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
	Available bool
}

type CartView struct {
	SessionID string
	Lines     []CartLineView
	Total     decimal.Decimal
	UpdatedAt time.Time
}
