package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/inbox"
	"marketplace/internal/adapters/out/metrics"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Recorder
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. A nil publisher disables the
// notification relay.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.NewRecorder(),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateNotificationDispatcher() ports.NotificationDispatcher {
	return inbox.NewDispatcher(c.uowFactory)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	return commands.NewRequestTransitionCommandHandler(
		c.orderUoWFactory(),
		c.CreateNotificationDispatcher(),
		c.metrics,
	)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	return commands.NewRelayNotificationsCommandHandler(c.notificationUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderProgressQueryHandler() queries.GetOrderProgressQueryHandler {
	return queries.NewGetOrderProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

// CreateRouter builds the HTTP server with every use case mounted.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		RequestTransition:    c.CreateRequestTransitionCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
		DeleteNotification:   c.CreateDeleteNotificationCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetOrderProgress:     c.CreateGetOrderProgressQueryHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		ListNotifications:    c.CreateListNotificationsQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, httpin.Observability{
		Middleware: c.metrics.Middleware(),
		Handler:    c.metrics.Handler(),
	})
}

// CreateJobManager schedules the notification relay when a publisher is configured.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if c.publisher == nil {
		return jobs.NewJobManager(nil, c.logger), nil
	}

	relayCmd, err := commands.NewRelayNotificationsCommand(
		c.config.KafkaOrderStatusTopic,
		c.config.NotificationRelayBatchSize,
	)
	if err != nil {
		return nil, err
	}

	relayJob := jobs.NewNotificationRelayJob(
		c.CreateRelayNotificationsCommandHandler(),
		relayCmd,
		c.config.NotificationRelaySchedule,
		c.logger,
	)
	return jobs.NewJobManager(relayJob, c.logger), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
