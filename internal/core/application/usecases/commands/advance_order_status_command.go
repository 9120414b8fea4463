package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand moves an order to the next status of its lifecycle
// on behalf of actor, with an optional note for the activity log.
type AdvanceOrderStatusCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	notes   string

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(orderID kernel.UUID, actor kernel.Actor, notes string) (AdvanceOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID: orderID,
		actor:   actor,
		notes:   strings.TrimSpace(notes),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c AdvanceOrderStatusCommand) Actor() kernel.Actor  { return c.actor }
func (c AdvanceOrderStatusCommand) Notes() string        { return c.notes }

// OrderTransitionResult describes a committed status change. InvoiceIDs is set
// when the change reached Invoice Issued and generation succeeded.
type OrderTransitionResult struct {
	OrderID     kernel.UUID
	OrderNumber string
	FromStatus  order.Status
	ToStatus    order.Status
	InvoiceIDs  []kernel.UUID
}
