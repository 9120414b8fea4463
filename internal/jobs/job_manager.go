package jobs

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

type Schedules struct {
	InvoiceReconciliation string
	OverdueReport         string
}

// JobManager starts and stops every scheduled job together.
type JobManager struct {
	reconciliation *InvoiceReconciliationJob
	overdueReport  *OverdueInvoiceReportJob
}

func NewJobManager(
	finder MissingInvoicesFinder,
	generator InvoiceGenerator,
	invoices InvoiceLister,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliation: NewInvoiceReconciliationJob(finder, generator, schedules.InvoiceReconciliation, logger),
		overdueReport:  NewOverdueInvoiceReportJob(invoices, schedules.OverdueReport, logger),
	}
}

// StartAll starts all jobs. If one fails to start, the ones already running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliation.Start(); err != nil {
		return fmt.Errorf("failed to start invoice reconciliation job: %w", err)
	}

	if err := jm.overdueReport.Start(); err != nil {
		jm.reconciliation.Stop()
		return fmt.Errorf("failed to start overdue invoice report job: %w", err)
	}

	return nil
}

// StopAll waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	jm.overdueReport.Stop()
	jm.reconciliation.Stop()
}

// newCron parses six-field expressions and skips a tick while the previous run
// is still going.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
