package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderNoteCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	o := testOrder(t, order.OrderShipped)
	cmd, err := commands.NewAddOrderNoteCommand(o.ID(), testActor(t), "customer asked to call on arrival")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddOrderNoteCommandHandler(factory, fixedTime)

	// When
	err = h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.OrderShipped, o.Status())
	require.Len(t, o.Activities(), 1)
	assert.Equal(t, order.ActionNoteAdded, o.Activities()[0].Action())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestNewAddOrderNoteCommand_EmptyNotes(t *testing.T) {
	_, err := commands.NewAddOrderNoteCommand(kernel.NewUUID(), testActor(t), "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
