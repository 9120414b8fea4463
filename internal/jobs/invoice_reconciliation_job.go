package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultReconciliationBatch caps how many orders one run repairs.
const DefaultReconciliationBatch = 50

type MissingInvoicesFinder interface {
	Handle(ctx context.Context, query queries.FindOrdersMissingInvoicesQuery) ([]kernel.UUID, error)
}

type InvoiceGenerator interface {
	Handle(ctx context.Context, cmd commands.GenerateInvoicesCommand) (commands.GenerateInvoicesResult, error)
}

// InvoiceReconciliationJob generates the invoices of orders that reached
// Invoice Issued without them, for example when generation failed right after
// the status change. Generation is idempotent, so overlapping runs are harmless.
type InvoiceReconciliationJob struct {
	finder    MissingInvoicesFinder
	generator InvoiceGenerator
	schedule  string
	batch     int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewInvoiceReconciliationJob(
	finder MissingInvoicesFinder,
	generator InvoiceGenerator,
	schedule string,
	logger *slog.Logger,
) *InvoiceReconciliationJob {
	return &InvoiceReconciliationJob{
		finder:    finder,
		generator: generator,
		schedule:  schedule,
		batch:     DefaultReconciliationBatch,
		cron:      newCron(),
		logger:    logger.With("component", "invoice_reconciliation_job"),
	}
}

func (j *InvoiceReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Invoice reconciliation job started", "schedule", j.schedule)
	return nil
}

func (j *InvoiceReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Invoice reconciliation job stopped")
}

// Run performs one pass and returns how many orders got new invoices. A failing
// order is logged and does not stop the others.
func (j *InvoiceReconciliationJob) Run(ctx context.Context) int {
	orderIDs, err := j.finder.Handle(ctx, queries.NewFindOrdersMissingInvoicesQuery(j.batch))
	if err != nil {
		j.logger.ErrorContext(ctx, "Find orders missing invoices failed", "error", err)
		return 0
	}

	repaired := 0
	for _, orderID := range orderIDs {
		cmd, cmdErr := commands.NewGenerateInvoicesCommand(orderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Invalid order id", "order_id", orderID.String(), "error", cmdErr)
			continue
		}

		result, genErr := j.generator.Handle(ctx, cmd)
		if genErr != nil {
			j.logger.ErrorContext(ctx, "Invoice reconciliation failed", "order_id", orderID.String(), "error", genErr)
			continue
		}
		if len(result.InvoiceIDs) > 0 {
			repaired++
			j.logger.InfoContext(ctx, "Missing invoices generated",
				"order_id", orderID.String(),
				"invoices", len(result.InvoiceIDs),
			)
		}
	}

	return repaired
}
