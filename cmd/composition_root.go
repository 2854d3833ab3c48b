package cmd

import (
	"log/slog"
	"time"

	"tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/memory/journalbuffer"
	"tracking/internal/adapters/out/memory/shipmentrepo"
	"tracking/internal/adapters/out/metrics"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/core/application/notifications"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the process-scoped instances and builds handlers from them.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	formatter  kernel.EpochFormatter
	repository *shipmentrepo.InMemoryShipmentRepository
	hub        *notifications.Hub
	metrics    *metrics.Metrics

	// journal is journalbuffer.Discard unless gormDB is set
	journal    ports.EventJournal
	buffer     *journalbuffer.Buffer
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires the shared instances. gormDB may be nil, which
// disables the event journal.
func NewCompositionRoot(config Config, loc *time.Location, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	m := metrics.New(metrics.DefaultNamespace)

	root := CompositionRoot{
		config:     config,
		logger:     logger,
		formatter:  kernel.NewEpochFormatter(loc),
		repository: shipmentrepo.NewInMemoryShipmentRepository(),
		hub:        notifications.NewHub(config.SubscriberBuffer, m, logger),
		metrics:    m,
		journal:    journalbuffer.Discard{},
	}

	if gormDB != nil {
		root.buffer = journalbuffer.New(config.JournalCapacity, logger)
		root.journal = root.buffer
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}

	return root
}

func (c *CompositionRoot) CreateOperationDispatcher() services.OperationDispatcher {
	return services.NewOperationDispatcher(c.repository, shipment.NewFactory(c.formatter))
}

func (c *CompositionRoot) CreateProcessEventCommandHandler() commands.ProcessEventCommandHandler {
	return commands.NewProcessEventCommandHandler(c.CreateOperationDispatcher(), c.hub, c.journal, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateFlushJournalCommandHandler() commands.FlushJournalCommandHandler {
	var f commands.JournalUoWFactory = FuncJournalUoWFactory(func() commands.JournalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlushJournalCommandHandler(c.buffer, f)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateProcessEventCommandHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.hub,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	statsJob := jobs.NewStatsJob(c.repository, c.hub, c.metrics, c.logger)

	var flushJob *jobs.JournalFlushJob
	if c.buffer != nil {
		flushJob = jobs.NewJournalFlushJob(
			c.CreateFlushJournalCommandHandler(),
			c.buffer.Len,
			c.metrics,
			c.config.JournalFlushSchedule,
			c.logger,
		)
	}

	return jobs.NewJobManager(statsJob, flushJob)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Hub returns the process-wide notification hub.
func (c *CompositionRoot) Hub() *notifications.Hub {
	return c.hub
}

type FuncJournalUoWFactory func() commands.JournalUoW

func (f FuncJournalUoWFactory) Create() commands.JournalUoW {
	return f()
}
