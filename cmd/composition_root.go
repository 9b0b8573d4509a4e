package cmd

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orderflow/internal/adapters/out/approvalhttp"
	outkafka "orderflow/internal/adapters/out/kafka"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/rediscache"
	"orderflow/internal/adapters/out/routinghttp"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	notifier       *outkafka.StatusNotifier
	cache          *rediscache.CacheInvalidator
	approvalClient *approvalhttp.Client
	routingClient  *routinghttp.Client
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		notifier: outkafka.NewStatusNotifier(
			outkafka.NewWriter(configs.KafkaHost, configs.KafkaStatusChangedTopic)),
		cache: rediscache.NewCacheInvalidator(
			redis.NewClient(&redis.Options{Addr: configs.RedisAddr})),
		approvalClient: approvalhttp.NewClient(configs.ApprovalServiceURL, &http.Client{Timeout: 10 * time.Second}),
		routingClient:  routinghttp.NewClient(configs.RoutingServiceURL, &http.Client{Timeout: 10 * time.Second}),
	}
}

func (c *CompositionRoot) CreateHaltOrderCommandHandler() commands.HaltOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewHaltOrderCommandHandler(f, c.createStatusChangePublisher())
}

func (c *CompositionRoot) CreateResumeOrderCommandHandler() commands.ResumeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResumeOrderCommandHandler(f, c.createStatusChangePublisher())
}

func (c *CompositionRoot) CreateRequestCancelOrderCommandHandler() commands.RequestCancelOrderCommandHandler {
	var f commands.CancelUoWFactory = FuncCancelUoWFactory(func() commands.CancelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestCancelOrderCommandHandler(
		f, c.approvalClient, c.createStatusChangePublisher(), c.cancelableStatuses())
}

func (c *CompositionRoot) CreateConfirmProductionCommandHandler() commands.ConfirmProductionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmProductionCommandHandler(
		f, c.routingClient, c.createStatusChangePublisher(), c.logger)
}

func (c *CompositionRoot) CreateRequestDeliveryCommandHandler() commands.RequestDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestDeliveryCommandHandler(f, c.createStatusChangePublisher())
}

func (c *CompositionRoot) CreateRefreshOrderStatusCommandHandler() commands.RefreshOrderStatusCommandHandler {
	var f commands.RefreshUoWFactory = FuncRefreshUoWFactory(func() commands.RefreshUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshOrderStatusCommandHandler(
		f, services.NewStatusSynchronizer(), c.createStatusChangePublisher())
}

func (c *CompositionRoot) CreateGetNextStatesQueryHandler() queries.GetNextStatesQueryHandler {
	return queries.NewGetNextStatesQueryHandler()
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	statusRefreshJob := jobs.NewStatusRefreshJob(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.CreateRefreshOrderStatusCommandHandler(),
		c.configs.StatusRefreshCron,
		c.logger,
	)
	return jobs.NewJobManager(statusRefreshJob)
}

func (c *CompositionRoot) createStatusChangePublisher() commands.StatusChangePublisher {
	return commands.NewStatusChangePublisher(c.notifier, c.cache, c.logger)
}

// cancelableStatuses parses the configured comma-separated allow-list.
// An empty configuration falls back to the two production-phase statuses.
func (c *CompositionRoot) cancelableStatuses() []order.Status {
	if c.configs.CancelableStatuses == "" {
		return []order.Status{order.PendingProduction, order.InProduction}
	}

	parts := strings.Split(c.configs.CancelableStatuses, ",")
	statuses := make([]order.Status, 0, len(parts))
	for _, part := range parts {
		statuses = append(statuses, order.Status(strings.TrimSpace(part)))
	}
	return statuses
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCancelUoWFactory func() commands.CancelUoW

func (f FuncCancelUoWFactory) Create() commands.CancelUoW {
	return f()
}

type FuncRefreshUoWFactory func() commands.RefreshUoW

func (f FuncRefreshUoWFactory) Create() commands.RefreshUoW {
	return f()
}
