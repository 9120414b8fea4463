// Package services holds domain logic that spans aggregates. InvoiceGenerator
// turns an order that reached InvoiceIssued into per-vendor invoices.
package services
