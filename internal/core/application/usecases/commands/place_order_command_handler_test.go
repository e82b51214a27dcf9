package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

type MockOrderPlacer struct{ mock.Mock }

func (m *MockOrderPlacer) PlaceOrder(
	ctx context.Context, raw order.UnvalidatedOrder,
) ([]order.PlaceOrderEvent, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.PlaceOrderEvent), args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, events []order.PlaceOrderEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockEventRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxEvent), args.Error(1)
}

func (m *MockEventRepository) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockEventUoW struct{ mock.Mock }

func (m *MockEventUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockEventUoWFactory struct{ mock.Mock }

func (m *MockEventUoWFactory) Create() commands.EventUoW {
	args := m.Called()
	return args.Get(0).(commands.EventUoW)
}

func makeEvents(t *testing.T) []order.PlaceOrderEvent {
	t.Helper()

	id, err := order.NewOrderID("order-001")
	require.NoError(t, err)
	customerInfo, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
	})
	require.NoError(t, err)
	address, err := order.NewAddress(order.UnvalidatedAddress{
		AddressLine1: "1 Main St",
		City:         "Springfield",
		ZipCode:      "12345",
	})
	require.NoError(t, err)
	validated, err := order.NewValidatedOrder(id, customerInfo, address, address, nil)
	require.NoError(t, err)
	priced, err := order.NewPricedOrder(validated, nil)
	require.NoError(t, err)

	events, err := order.CreateEvents(priced, nil)
	require.NoError(t, err)
	return events
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	raw := order.UnvalidatedOrder{OrderID: "order-001"}
	cmd, _ := commands.NewPlaceOrderCommand(raw)
	events := makeEvents(t)

	placer := new(MockOrderPlacer)
	repo := new(MockEventRepository)
	uow := new(MockEventUoW)
	mock.InOrder(
		placer.On("PlaceOrder", ctx, raw).Return(events, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventRepository").Return(repo).Once(),
		repo.On("Add", ctx, events).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(placer, factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, events, got)
	placer.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	placer := new(MockOrderPlacer)
	factory := new(MockEventUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(placer, factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	placer.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_WorkflowError(t *testing.T) {
	ctx := t.Context()
	raw := order.UnvalidatedOrder{OrderID: ""}
	cmd, _ := commands.NewPlaceOrderCommand(raw)

	placer := new(MockOrderPlacer)
	placer.On("PlaceOrder", ctx, raw).Return(nil, errors.New("orderId is required")).Once()

	factory := new(MockEventUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(placer, factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	raw := order.UnvalidatedOrder{OrderID: "order-001"}
	cmd, _ := commands.NewPlaceOrderCommand(raw)
	events := makeEvents(t)

	placer := new(MockOrderPlacer)
	uow := new(MockEventUoW)
	factory := new(MockEventUoWFactory)
	mock.InOrder(
		placer.On("PlaceOrder", ctx, raw).Return(events, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(placer, factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	raw := order.UnvalidatedOrder{OrderID: "order-001"}
	cmd, _ := commands.NewPlaceOrderCommand(raw)
	events := makeEvents(t)

	placer := new(MockOrderPlacer)
	repo := new(MockEventRepository)
	uow := new(MockEventUoW)
	mock.InOrder(
		placer.On("PlaceOrder", ctx, raw).Return(events, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventRepository").Return(repo).Once(),
		repo.On("Add", ctx, events).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(placer, factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	raw := order.UnvalidatedOrder{OrderID: "order-001"}
	cmd, _ := commands.NewPlaceOrderCommand(raw)
	events := makeEvents(t)

	placer := new(MockOrderPlacer)
	repo := new(MockEventRepository)
	uow := new(MockEventUoW)
	mock.InOrder(
		placer.On("PlaceOrder", ctx, raw).Return(events, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventRepository").Return(repo).Once(),
		repo.On("Add", ctx, events).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(placer, factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
