package cmd

import (
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	inhttp "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/prom"
	"pizzeria/internal/adapters/out/redis/orderrepo"
	"pizzeria/internal/adapters/out/redis/pubsub"
	"pizzeria/internal/adapters/out/redis/statecache"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/jobs"
	"pizzeria/internal/pkg/keymutex"
)

// CompositionRoot wires the Redis adapters into the use case handlers.
// Handlers are cheap to construct, so each Create method builds a fresh
// one over the shared adapters.
type CompositionRoot struct {
	config  Config
	orders  ports.OrderRepository
	channel ports.NotificationChannel
	cache   ports.CacheStore
	locks   *keymutex.KeyedMutex
}

func NewCompositionRoot(config Config, client *goredis.Client) CompositionRoot {
	return CompositionRoot{
		config:  config,
		orders:  orderrepo.NewRedisOrderRepository(client),
		channel: pubsub.NewRedisNotificationChannel(client),
		cache:   statecache.NewRedisCacheStore(client),
		locks:   keymutex.New(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.channel)
}

func (c *CompositionRoot) CreateSupplierRespondCommandHandler() commands.SupplierRespondCommandHandler {
	return commands.NewSupplierRespondCommandHandler(c.orders, c.channel, c.locks)
}

func (c *CompositionRoot) CreateCustomerAcceptCommandHandler() commands.CustomerAcceptCommandHandler {
	return commands.NewCustomerAcceptCommandHandler(c.orders, c.channel, c.locks)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orders, c.channel, c.locks)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orders, c.channel, c.locks)
}

func (c *CompositionRoot) CreateDispatchEventBatchCommandHandler() commands.DispatchEventBatchCommandHandler {
	return commands.NewDispatchEventBatchCommandHandler(c.channel)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetDeliveryInfoQueryHandler() queries.GetDeliveryInfoQueryHandler {
	return queries.NewGetDeliveryInfoQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateCachedSystemStateQueryHandler() queries.CachedSystemStateQueryHandler {
	return queries.NewCachedSystemStateQueryHandler(
		queries.NewGetSystemStateQueryHandler(c.orders),
		c.cache,
		time.Duration(c.config.CacheTTLSeconds)*time.Second,
	)
}

func (c *CompositionRoot) CreateCachedStatisticsQueryHandler() queries.CachedStatisticsQueryHandler {
	return queries.NewCachedStatisticsQueryHandler(
		queries.NewGetStatisticsQueryHandler(c.orders),
		c.cache,
		time.Duration(c.config.CacheTTLSeconds)*time.Second,
	)
}

func (c *CompositionRoot) CreateMetricsRefresher() *prom.Refresher {
	return prom.NewRefresher(c.orders)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMetricsRefresher(),
		c.config.MetricsRefreshSeconds,
		logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateSupplierRespondCommandHandler(),
		c.CreateCustomerAcceptCommandHandler(),
		c.CreateDispatchOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDispatchEventBatchCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetDeliveryInfoQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateCachedSystemStateQueryHandler(),
		c.CreateCachedStatisticsQueryHandler(),
	)
}
