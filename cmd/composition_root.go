package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/zonefeerepo"
	"dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/tracking"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/locks"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// It owns the process-wide singletons: the keyed order locks, the live
// tracking feed and the optional redis location cache.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	orderLocks  *locks.KeyedMutex
	feed        *tracking.Feed
	cache       ports.LocationCache
	feeResolver services.FeeResolver
	logger      *slog.Logger
}

// NewCompositionRoot builds the application object graph over an open
// database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	var cache ports.LocationCache
	if config.RedisAddr != "" {
		cache = redis.NewLocationCache(config.RedisAddr, config.LocationCacheTTL)
	}

	geocoder := geo.NewClient(config.GeoServiceURL, config.GeoTimeout)
	feeTable := zonefeerepo.NewGormZoneFeeRepository(gormDB)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),

		orderLocks:  locks.NewKeyedMutex(),
		feed:        tracking.NewFeed(),
		cache:       cache,
		feeResolver: services.NewFeeResolver(geocoder, feeTable),
		logger:      logger,
	}
}

// Feed exposes the live tracking feed for the HTTP stream endpoint.
func (c *CompositionRoot) Feed() *tracking.Feed {
	return c.feed
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) zoneFeeUoWFactory() commands.ZoneFeeUoWFactory {
	return FuncZoneFeeUoWFactory(func() commands.ZoneFeeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.feeResolver, c.config.GeoTimeout)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	return commands.NewReportLocationCommandHandler(c.orderUoWFactory(), c.orderLocks, c.feed, c.cache)
}

func (c *CompositionRoot) CreateFinishDeliveryCommandHandler() commands.FinishDeliveryCommandHandler {
	return commands.NewFinishDeliveryCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateMarkPaidCommandHandler() commands.MarkPaidCommandHandler {
	return commands.NewMarkPaidCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.orderLocks)
}

func (c *CompositionRoot) CreateSetZoneFeeCommandHandler() commands.SetZoneFeeCommandHandler {
	return commands.NewSetZoneFeeCommandHandler(c.zoneFeeUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetZoneFeesQueryHandler() queries.GetZoneFeesQueryHandler {
	return queries.NewGetZoneFeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderLocationQueryHandler() queries.GetOrderLocationQueryHandler {
	return queries.NewGetOrderLocationQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetActiveCouriersQueryHandler() queries.GetActiveCouriersQueryHandler {
	return queries.NewGetActiveCouriersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the inbound REST adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.ServerHandlers{
		PlaceOrder:     c.CreatePlaceOrderCommandHandler(),
		AssignCourier:  c.CreateAssignCourierCommandHandler(),
		StartDelivery:  c.CreateStartDeliveryCommandHandler(),
		ReportLocation: c.CreateReportLocationCommandHandler(),
		FinishDelivery: c.CreateFinishDeliveryCommandHandler(),
		MarkPaid:       c.CreateMarkPaidCommandHandler(),
		SetZoneFee:     c.CreateSetZoneFeeCommandHandler(),
		SetOrderStatus: c.CreateSetOrderStatusCommandHandler(),

		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetCustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
		GetCourierOrders:  c.CreateGetCourierOrdersQueryHandler(),
		GetAllOrders:      c.CreateGetAllOrdersQueryHandler(),
		GetZoneFees:       c.CreateGetZoneFeesQueryHandler(),
		GetOrderLocation:  c.CreateGetOrderLocationQueryHandler(),
		GetActiveCouriers: c.CreateGetActiveCouriersQueryHandler(),
	}, c.feed)
}

// CreateJobManager builds the background job coordinator.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderUoWFactory(), c.config.StaleTrackingThreshold, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncZoneFeeUoWFactory func() commands.ZoneFeeUoW

func (f FuncZoneFeeUoWFactory) Create() commands.ZoneFeeUoW {
	return f()
}
