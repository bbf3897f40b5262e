package cmd

import (
	"log/slog"

	adapterhttp "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/out/broadcast"
	"tableside/internal/adapters/out/memory"
	"tableside/internal/adapters/out/postgres"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
	"tableside/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs together. A nil gormDB
// selects the in-memory store; otherwise persistence goes through PostgreSQL.
type CompositionRoot struct {
	logger      *slog.Logger
	config      Config
	uowFactory  ports.UnitOfWorkFactory
	orderRepo   ports.OrderRepository
	menuRepo    ports.MenuRepository
	broadcaster *broadcast.Broadcaster
	router      services.NotificationRouter
}

// NewCompositionRoot builds the object graph for the configured backends.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	menuRepo, err := memory.NewSeededMenuCatalog()
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		logger:      logger,
		config:      config,
		menuRepo:    menuRepo,
		broadcaster: broadcast.NewBroadcaster(logger),
		router:      services.NewNotificationRouter(),
	}

	if gormDB != nil {
		factory := postgres.NewGormUnitOfWorkFactory(gormDB)
		root.uowFactory = factory
		root.orderRepo = factory.Create().OrderRepository()
	} else {
		store := memory.NewStore()
		root.uowFactory = memory.NewUnitOfWorkFactory(store)
		root.orderRepo = memory.NewOrderRepository(store)
	}

	return root, nil
}

// Broadcaster returns the process-wide event broadcaster.
func (c *CompositionRoot) Broadcaster() *broadcast.Broadcaster {
	return c.broadcaster
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.orderUoWFactory(), c.menuRepo, c.router, c.broadcaster)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		c.orderUoWFactory(), c.router, c.broadcaster)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateListDelayedOrdersQueryHandler() queries.ListDelayedOrdersQueryHandler {
	return queries.NewListDelayedOrdersQueryHandler(c.orderRepo)
}

// CreateHTTPServer builds the REST surface over the use cases.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateListOrdersQueryHandler(),
	)
}

// CreateSSEServer builds the server-sent event endpoints.
func (c *CompositionRoot) CreateSSEServer() *adapterhttp.SSEServer {
	return adapterhttp.NewSSEServer(c.logger, c.broadcaster, c.CreateListOrdersQueryHandler())
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListDelayedOrdersQueryHandler(),
		c.router,
		c.broadcaster,
		c.config.DelayedOrderThreshold,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
