package commands

import (
	"context"
)

// AddOrderNoteCommandHandler appends a note to the order activity log without
// changing its status.
type AddOrderNoteCommandHandler struct {
	uowFactory OrderUoWFactory
	now        Clock
}

func NewAddOrderNoteCommandHandler(uowFactory OrderUoWFactory, now Clock) AddOrderNoteCommandHandler {
	return AddOrderNoteCommandHandler{uowFactory: uowFactory, now: now}
}

func (h AddOrderNoteCommandHandler) Handle(ctx context.Context, cmd AddOrderNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AddNote(cmd.Actor(), cmd.Notes(), h.now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
