package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand checks out the cart of a browsing session.
//
// Example:
//
//	customer, _ := order.NewCustomer("Asha", "+254700000001", "Westlands", "Morning", "")
//	cmd, err := NewCreateOrderCommand(sessionID, customer)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	sessionID string
	customer  order.Customer

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(sessionID string, customer order.Customer) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setCustomer(customer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) SessionID() string {
	return c.sessionID
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c *CreateOrderCommand) setSessionID(sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return errs.NewValueIsRequiredError("session id")
	}

	c.sessionID = sessionID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

// CreateOrderResult is returned to the shopper after checkout. HandoffURL is
// empty when the chat link could not be built.
type CreateOrderResult struct {
	OrderID     string
	OrderNumber string
	Total       string
	HandoffURL  string
}
