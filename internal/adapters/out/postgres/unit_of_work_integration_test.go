package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM Unit of Work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &notificationrepo.NotificationDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, notifications CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.NotificationRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.NotificationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_StatusChangeWithNotification verifies a status write and its
// inbox entry become visible together on commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusChangeWithNotification() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, testOrder))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	updated, err := uow.OrderRepository().CompareAndSetStatus(ctx, testOrder.ID(), order.Pending, order.Confirmed)
	suite.Require().NoError(err)

	n, err := notification.NewOrderStatusNotification(testOrder.CustomerID(), testOrder.ID(), updated.Status(), "confirmed")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	retrieved, err := fresh.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())

	pending, err := fresh.NotificationRepository().FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(n.ID(), pending[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, testOrder))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.OrderRepository().CompareAndSetStatus(ctx, testOrder.ID(), order.Pending, order.Cancelled)
	suite.Require().NoError(err)

	n, err := notification.NewOrderStatusNotification(testOrder.CustomerID(), testOrder.ID(), order.Cancelled, "cancelled")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	retrieved, err := fresh.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrieved.Status(), "Status should not change after rollback")

	pending, err := fresh.NotificationRepository().FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending, "Notification should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AggregateTracking() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	_, err := uow.OrderRepository().CompareAndSetStatus(ctx, testOrder.ID(), order.Pending, order.Confirmed)
	suite.Require().NoError(err)

	gormUow, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal(2, gormUow.TrackedCount())

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Equal(0, gormUow.TrackedCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := suite.createTestOrder()
	order2 := suite.createTestOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = fresh.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.MoneyFromString("4.00")
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)

	address, err := kernel.NewAddress("1 Barn Rd", "Walla Walla", "WA", "99362", "US")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, address, "")
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
