package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand is the quick status update of the admin order list. The
// caller names the status it wants; the change is accepted only when that is
// the order's next status.
type SetOrderStatusCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	target  order.Status
	notes   string

	guard guard.ConstructorGuard
}

func NewSetOrderStatusCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	target order.Status,
	notes string,
) (SetOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), target.Validate()); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		notes:   strings.TrimSpace(notes),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c SetOrderStatusCommand) Actor() kernel.Actor  { return c.actor }
func (c SetOrderStatusCommand) Target() order.Status { return c.target }
func (c SetOrderStatusCommand) Notes() string        { return c.notes }
