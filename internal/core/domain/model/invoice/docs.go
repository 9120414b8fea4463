// Package invoice models per-vendor billing records derived from an order.
//
// Invoices are created already Issued with a due date PaymentTermDays after the
// issue date and a CommissionPercentage commission on the total. The only
// transition is MarkSettled.
package invoice
