package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/invoice"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

type InvoiceLister interface {
	Handle(ctx context.Context, query queries.ListInvoicesQuery) ([]queries.InvoiceView, error)
}

// OverdueReport summarizes unsettled invoices past their due date.
type OverdueReport struct {
	Count      int
	Amount     decimal.Decimal
	Commission decimal.Decimal
}

// OverdueInvoiceReportJob logs the overdue invoices. It never changes them.
type OverdueInvoiceReportJob struct {
	invoices InvoiceLister
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOverdueInvoiceReportJob(invoices InvoiceLister, schedule string, logger *slog.Logger) *OverdueInvoiceReportJob {
	return &OverdueInvoiceReportJob{
		invoices: invoices,
		schedule: schedule,
		cron:     newCron(),
		logger:   logger.With("component", "overdue_invoice_report_job"),
	}
}

func (j *OverdueInvoiceReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { _, _ = j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Overdue invoice report job started", "schedule", j.schedule)
	return nil
}

func (j *OverdueInvoiceReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Overdue invoice report job stopped")
}

func (j *OverdueInvoiceReportJob) Run(ctx context.Context) (OverdueReport, error) {
	overdue, err := j.invoices.Handle(ctx, queries.NewListInvoicesQuery().WithStatus(invoice.Overdue))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue invoice report failed", "error", err)
		return OverdueReport{}, err
	}

	report := OverdueReport{Amount: decimal.Zero, Commission: decimal.Zero}
	for _, inv := range overdue {
		report.Count++
		report.Amount = report.Amount.Add(inv.TotalAmount)
		report.Commission = report.Commission.Add(inv.CommissionAmount)
		j.logger.WarnContext(ctx, "Invoice overdue",
			"invoice", inv.Number,
			"vendor", inv.VendorName,
			"due_date", inv.DueDate,
			"amount", inv.TotalAmount.String(),
		)
	}

	j.logger.InfoContext(ctx, "Overdue invoice report",
		"count", report.Count,
		"amount", report.Amount.String(),
		"commission", report.Commission.String(),
	)
	return report, nil
}
