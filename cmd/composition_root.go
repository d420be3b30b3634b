package cmd

import (
	"log/slog"

	"manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/adapters/out/postgres/historyrepo"
	"manufacturing/internal/adapters/out/postgres/inquiryrepo"
	"manufacturing/internal/adapters/out/postgres/orderrepo"
	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.StatusNotifier
	logger     *slog.Logger
}

// NewCompositionRoot wires the application graph. notifier may be nil when no
// broker is configured; command handlers treat that as "do not publish".
func NewCompositionRoot(
	_ Config, gormDB *gorm.DB, notifier ports.StatusNotifier, logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddQuotationCommandHandler() commands.AddQuotationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddQuotationCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordOrderMilestoneCommandHandler() commands.RecordOrderMilestoneCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordOrderMilestoneCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateInquiryCommandHandler() commands.CreateInquiryCommandHandler {
	var f commands.InquiryUoWFactory = FuncInquiryUoWFactory(func() commands.InquiryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInquiryCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeInquiryStatusCommandHandler() commands.ChangeInquiryStatusCommandHandler {
	var f commands.InquiryUoWFactory = FuncInquiryUoWFactory(func() commands.InquiryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeInquiryStatusCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetInquiryStatusQueryHandler() queries.GetInquiryStatusQueryHandler {
	return queries.NewGetInquiryStatusQueryHandler(inquiryrepo.NewGormInquiryRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(historyrepo.NewGormStatusChangeStore(c.gormDB))
}

func (c *CompositionRoot) CreateGetStatusTimelineQueryHandler() queries.GetStatusTimelineQueryHandler {
	return queries.NewGetStatusTimelineQueryHandler(historyrepo.NewGormStatusChangeStore(c.gormDB))
}

func (c *CompositionRoot) CreateGetStatusStatisticsQueryHandler() queries.GetStatusStatisticsQueryHandler {
	return queries.NewGetStatusStatisticsQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		inquiryrepo.NewGormInquiryRepository(c.gormDB),
		historyrepo.NewGormStatusChangeStore(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetConsistencyReportQueryHandler() queries.GetConsistencyReportQueryHandler {
	return queries.NewGetConsistencyReportQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		inquiryrepo.NewGormInquiryRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetConsistencyReportQueryHandler(),
		historyrepo.NewGormStatusChangeStore(c.gormDB),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInquiryUoWFactory func() commands.InquiryUoW

func (f FuncInquiryUoWFactory) Create() commands.InquiryUoW {
	return f()
}
