// Package jobs runs the storefront's scheduled background tasks on
// github.com/robfig/cron/v3 with six-field (seconds) expressions.
//
// # Available Jobs
//
//  1. InvoiceReconciliationJob generates the missing invoices of orders already
//     in Invoice Issued. It covers runs where the status change committed but
//     invoice generation failed.
//  2. OverdueInvoiceReportJob logs unsettled invoices past their due date.
//     Overdue is computed at read time and nothing is written.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(finder, generator, invoices, jobs.Schedules{
//		InvoiceReconciliation: "0 */5 * * * *",
//		OverdueReport:         "0 0 8 * * *",
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs log failures and keep their schedule. The reconciliation job continues
// with the next order when one fails.
package jobs
