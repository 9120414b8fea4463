package cmd

import (
	"log/slog"
	"time"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

// Dependencies are the adapters built by main before the root is assembled.
type Dependencies struct {
	DB        *gorm.DB
	Carts     ports.CartStore
	Publisher ports.EventPublisher
	Handoff   ports.OrderHandoff
	Clock     func() time.Time
	Logger    *slog.Logger
}

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *catalogrepo.GormCatalogRepository
	carts      ports.CartStore
	publisher  ports.EventPublisher
	handoff    ports.OrderHandoff
	now        func() time.Time
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, deps Dependencies) *CompositionRoot {
	now := deps.Clock
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &CompositionRoot{
		configs:    configs,
		gormDB:     deps.DB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(deps.DB),
		catalog:    catalogrepo.NewGormCatalogRepository(deps.DB),
		carts:      deps.Carts,
		publisher:  deps.Publisher,
		handoff:    deps.Handoff,
		now:        now,
		logger:     deps.Logger,
	}
}

func (c *CompositionRoot) CatalogWriter() ports.CatalogWriter {
	return c.catalog
}

func (c *CompositionRoot) CreateCartCommandHandler() commands.CartCommandHandler {
	return commands.NewCartCommandHandler(c.carts, c.catalog.Products(), c.now)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		c.carts, c.catalog.Products(), c.catalog.Vendors(), f, c.handoff, c.publisher, c.now, c.logger,
	)
}

func (c *CompositionRoot) CreateGenerateInvoicesCommandHandler() commands.GenerateInvoicesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	generator := services.NewInvoiceGenerator(c.catalog.Vendors(), c.catalog.Products())
	return commands.NewGenerateInvoicesCommandHandler(f, generator, c.publisher, c.now, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(
		f, c.CreateGenerateInvoicesCommandHandler(), c.publisher, c.now, c.logger,
	)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(
		f, c.CreateGenerateInvoicesCommandHandler(), c.publisher, c.now, c.logger,
	)
}

func (c *CompositionRoot) CreateAddOrderNoteCommandHandler() commands.AddOrderNoteCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderNoteCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateMarkInvoiceSettledCommandHandler() commands.MarkInvoiceSettledCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkInvoiceSettledCommandHandler(f, c.publisher, c.now, c.logger)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts, c.catalog.Products())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListInvoicesQueryHandler() queries.ListInvoicesQueryHandler {
	return queries.NewListInvoicesQueryHandler(c.gormDB, c.now)
}

func (c *CompositionRoot) CreateFindOrdersMissingInvoicesQueryHandler() queries.FindOrdersMissingInvoicesQueryHandler {
	return queries.NewFindOrdersMissingInvoicesQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case the HTTP server dispatches to.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		Carts:              c.CreateCartCommandHandler(),
		Checkout:           c.CreateCreateOrderCommandHandler(),
		AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),
		SetOrderStatus:     c.CreateSetOrderStatusCommandHandler(),
		AddOrderNote:       c.CreateAddOrderNoteCommandHandler(),
		GenerateInvoices:   c.CreateGenerateInvoicesCommandHandler(),
		MarkInvoiceSettled: c.CreateMarkInvoiceSettledCommandHandler(),
		GetCart:            c.CreateGetCartQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		ListInvoices:       c.CreateListInvoicesQueryHandler(),
	}
}

func (c *CompositionRoot) CreateInvoiceReconciliationJob() *jobs.InvoiceReconciliationJob {
	return jobs.NewInvoiceReconciliationJob(
		c.CreateFindOrdersMissingInvoicesQueryHandler(),
		c.CreateGenerateInvoicesCommandHandler(),
		c.configs.ReconciliationSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateFindOrdersMissingInvoicesQueryHandler(),
		c.CreateGenerateInvoicesCommandHandler(),
		c.CreateListInvoicesQueryHandler(),
		jobs.Schedules{
			InvoiceReconciliation: c.configs.ReconciliationSchedule,
			OverdueReport:         c.configs.OverdueReportSchedule,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
