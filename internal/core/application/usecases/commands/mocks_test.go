package commands_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) CompareAndSetStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, newStatus order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, id, expected, newStatus)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
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

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, recipientID kernel.UUID) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id, recipientID kernel.UUID) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) FetchUnpublished(
	ctx context.Context,
	limit int,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	batch, _ := args.Get(0).([]*notification.Notification)
	return batch, args.Error(1)
}

func (m *MockNotificationRepository) MarkPublished(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) NotifyStatusChange(
	ctx context.Context,
	orderID kernel.UUID,
	status order.Status,
	recipientID kernel.UUID,
) error {
	args := m.Called(ctx, orderID, status, recipientID)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}

type MockTransitionMetrics struct{ mock.Mock }

func (m *MockTransitionMetrics) ObserveTransition(from, to order.Status, role order.Role, outcome string) {
	m.Called(from, to, role, outcome)
}

// orderParties builds orders owned by one customer and one farmer.
type orderParties struct {
	customerID kernel.UUID
	farmerID   kernel.UUID
}

func newOrderParties() orderParties {
	return orderParties{customerID: kernel.NewUUID(), farmerID: kernel.NewUUID()}
}

func (p orderParties) items(t *testing.T) []order.Item {
	t.Helper()

	price, err := kernel.MoneyFromString("5.00")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), p.farmerID, 2, price)
	require.NoError(t, err)
	return []order.Item{item}
}

func (p orderParties) address(t *testing.T) kernel.Address {
	t.Helper()

	address, err := kernel.NewAddress("9 Creamery Way", "Burlington", "VT", "05401", "US")
	require.NoError(t, err)
	return address
}

func (p orderParties) orderAt(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), p.customerID, p.items(t), p.address(t), "")
	require.NoError(t, err)

	restored, err := order.RestoreOrder(order.Snapshot{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		Items:           o.Items(),
		TotalAmount:     o.TotalAmount(),
		Status:          status,
		PaymentStatus:   order.PaymentCompleted,
		DeliveryAddress: o.DeliveryAddress(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	})
	require.NoError(t, err)
	return restored
}

func (p orderParties) farmer(t *testing.T) order.Actor {
	t.Helper()

	actor, err := order.NewActor(p.farmerID, order.RoleFarmer)
	require.NoError(t, err)
	return actor
}

func (p orderParties) customer(t *testing.T) order.Actor {
	t.Helper()

	actor, err := order.NewActor(p.customerID, order.RoleCustomer)
	require.NoError(t, err)
	return actor
}
