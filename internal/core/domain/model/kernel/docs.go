// Package kernel holds the value objects shared by the order, invoice, catalog and
// cart models: UUID identifiers, decimal Money, the acting user recorded in audit
// trails, and the human-readable document number format used for orders and invoices.
package kernel
