package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddOrderNoteCommandIsNotConstructed = errors.New(
	"AddOrderNoteCommand must be created via NewAddOrderNoteCommand constructor",
)

type AddOrderNoteCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	notes   string

	guard guard.ConstructorGuard
}

func NewAddOrderNoteCommand(orderID kernel.UUID, actor kernel.Actor, notes string) (AddOrderNoteCommand, error) {
	notes = strings.TrimSpace(notes)
	var notesErr error
	if notes == "" {
		notesErr = errs.NewValueIsRequiredError("notes")
	}

	if err := errors.Join(orderID.Validate(), actor.Validate(), notesErr); err != nil {
		return AddOrderNoteCommand{}, err
	}

	return AddOrderNoteCommand{
		orderID: orderID,
		actor:   actor,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderNoteCommandIsNotConstructed)
}

func (c AddOrderNoteCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddOrderNoteCommand) Actor() kernel.Actor  { return c.actor }
func (c AddOrderNoteCommand) Notes() string        { return c.notes }
