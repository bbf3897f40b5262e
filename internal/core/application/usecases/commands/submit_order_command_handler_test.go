package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatusOlderThan(
	ctx context.Context, status order.Status, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

func (m *MockMenuRepository) Get(ctx context.Context, id int) (menu.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(menu.Item), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(channel string, event ports.Event) {
	m.Called(channel, event)
}

func mustItem(t *testing.T, id int, name, price string) menu.Item {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewItem(id, name, p)
	require.NoError(t, err)
	return item
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitOrderCommand("5", []int{1})
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", ctx, 1).Return(mustItem(t, 1, "Burger", "9.99"), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", services.StaffChannel, mock.MatchedBy(func(ev ports.Event) bool {
		return ev.Name == services.EventNewOrder
	})).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, menuRepo, services.NewNotificationRouter(), publisher)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "5", created.TableNumber())
	assert.Equal(t, order.New, created.Status())
	assert.Equal(t, 1, created.Version())
	assert.Equal(t, "9.99", created.Total().String())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitOrderCommand("5", []int{404})
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", ctx, 404).
		Return(menu.Item{}, errs.NewObjectNotFoundError("menu item", 404)).Once()

	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)

	h := commands.NewSubmitOrderCommandHandler(factory, menuRepo, services.NewNotificationRouter(), publisher)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitOrderCommand{} // not constructed properly

	h := commands.NewSubmitOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockMenuRepository),
		services.NewNotificationRouter(), new(MockEventPublisher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSubmitOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitOrderCommand("5", []int{1})
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", ctx, 1).Return(mustItem(t, 1, "Burger", "9.99"), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewSubmitOrderCommandHandler(factory, menuRepo, services.NewNotificationRouter(), publisher)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	// No event leaves the system for a failed submission.
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitOrderCommand("5", []int{1})
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Get", ctx, 1).Return(mustItem(t, 1, "Burger", "9.99"), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewSubmitOrderCommandHandler(factory, menuRepo, services.NewNotificationRouter(), publisher)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
