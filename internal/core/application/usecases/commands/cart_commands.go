package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCartCommandIsNotConstructed = errors.New("cart command must be created via its constructor")

// ChangeCartCommand adds to, sets or removes one cart line, depending on the
// handler it is passed to.
type ChangeCartCommand struct {
	sessionID string
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewChangeCartCommand(sessionID string, productID kernel.UUID, quantity int) (ChangeCartCommand, error) {
	sessionID = strings.TrimSpace(sessionID)
	var sessionErr error
	if sessionID == "" {
		sessionErr = errs.NewValueIsRequiredError("session id")
	}

	if err := errors.Join(sessionErr, productID.Validate()); err != nil {
		return ChangeCartCommand{}, err
	}

	return ChangeCartCommand{
		sessionID: sessionID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCartCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c ChangeCartCommand) SessionID() string      { return c.sessionID }
func (c ChangeCartCommand) ProductID() kernel.UUID { return c.productID }
func (c ChangeCartCommand) Quantity() int          { return c.quantity }

type ClearCartCommand struct {
	sessionID string

	guard guard.ConstructorGuard
}

func NewClearCartCommand(sessionID string) (ClearCartCommand, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ClearCartCommand{}, errs.NewValueIsRequiredError("session id")
	}
	return ClearCartCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c ClearCartCommand) SessionID() string {
	return c.sessionID
}
