package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	o := testOrder(t, order.PaymentPending)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), testActor(t), "paid by M-Pesa")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)
	invoices := new(MockInvoiceGeneration)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderStatusChanged) bool {
		return e.FromStatus == "Payment Pending" && e.ToStatus == "Payment Confirmed" && e.ChangedBy == "admin-1"
	})).Return(nil).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, invoices, publisher, fixedTime, discardLogger())

	// When
	result, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPending, result.FromStatus)
	assert.Equal(t, order.PaymentConfirmed, result.ToStatus)
	assert.Equal(t, o.Number(), result.OrderNumber)
	assert.Empty(t, result.InvoiceIDs)

	require.Len(t, o.Activities(), 1)
	activity := o.Activities()[0]
	assert.Equal(t, order.PaymentPending, activity.FromStatus())
	assert.Equal(t, order.PaymentConfirmed, activity.ToStatus())
	assert.Equal(t, "paid by M-Pesa", activity.Notes())

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	invoices.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAdvanceOrderStatusCommandHandler_Handle_TerminalStatus(t *testing.T) {
	// Given
	ctx := t.Context()
	o := testOrder(t, order.InvoiceSettled)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), testActor(t), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(
		factory, new(MockInvoiceGeneration), publisher, fixedTime, discardLogger(),
	)

	// When
	_, err = h.Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, order.ErrNoTransitionAvailable)
	assert.Equal(t, order.InvoiceSettled, o.Status())
	assert.Empty(t, o.Activities())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAdvanceOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	// Given
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderStatusCommand(id, testActor(t), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(
		factory, new(MockInvoiceGeneration), new(MockEventPublisher), fixedTime, discardLogger(),
	)

	// When
	_, err = h.Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAdvanceOrderStatusCommandHandler_Handle_ConcurrentUpdate(t *testing.T) {
	// Given
	ctx := t.Context()
	o := testOrder(t, order.OrderShipped)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), testActor(t), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(
		factory, new(MockInvoiceGeneration), publisher, fixedTime, discardLogger(),
	)

	// When
	_, err = h.Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAdvanceOrderStatusCommandHandler_Handle_GeneratesInvoices(t *testing.T) {
	// Given
	ctx := t.Context()
	o := testOrder(t, order.OrderDelivered)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), testActor(t), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)
	invoices := new(MockInvoiceGeneration)
	invoiceIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()
	invoices.On("Handle", ctx, mock.MatchedBy(func(c commands.GenerateInvoicesCommand) bool {
		return c.OrderID().IsEqual(o.ID())
	})).Return(commands.GenerateInvoicesResult{OrderID: o.ID(), InvoiceIDs: invoiceIDs}, nil).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, invoices, publisher, fixedTime, discardLogger())

	// When
	result, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.InvoiceIssued, result.ToStatus)
	assert.Equal(t, invoiceIDs, result.InvoiceIDs)
	invoices.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_InvoiceGenerationFails(t *testing.T) {
	// Given
	ctx := t.Context()
	o := testOrder(t, order.OrderDelivered)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), testActor(t), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)
	invoices := new(MockInvoiceGeneration)
	storeErr := errors.New("connection reset")

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()
	invoices.On("Handle", ctx, mock.Anything).Return(commands.GenerateInvoicesResult{}, storeErr).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, invoices, publisher, fixedTime, discardLogger())

	// When
	result, err := h.Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, commands.ErrInvoiceGenerationFailed)
	require.ErrorIs(t, err, storeErr)
	assert.Equal(t, order.InvoiceIssued, result.ToStatus)
	assert.Equal(t, order.InvoiceIssued, o.Status())
	uow.AssertCalled(t, "Commit", ctx)
}

func TestAdvanceOrderStatusCommandHandler_Handle_PublishFailureIsIgnored(t *testing.T) {
	// Given
	ctx := t.Context()
	o := testOrder(t, order.PaymentConfirmed)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), testActor(t), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("topic not found")).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(
		factory, new(MockInvoiceGeneration), publisher, fixedTime, discardLogger(),
	)

	// When
	result, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.OrderProcessing, result.ToStatus)
}

func TestAdvanceOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewAdvanceOrderStatusCommandHandler(
		new(MockOrderUoWFactory), new(MockInvoiceGeneration), new(MockEventPublisher), fixedTime, discardLogger(),
	)

	_, err := h.Handle(ctx, commands.AdvanceOrderStatusCommand{})
	require.ErrorIs(t, err, commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func TestNewAdvanceOrderStatusCommand(t *testing.T) {
	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(kernel.UUID{}, testActor(t), "")
		require.Error(t, err)
	})

	t.Run("zero actor", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID(), kernel.Actor{}, "")
		require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
	})

	t.Run("notes are trimmed", func(t *testing.T) {
		cmd, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID(), testActor(t), "  left at gate ")
		require.NoError(t, err)
		assert.Equal(t, "left at gate", cmd.Notes())
	})
}
