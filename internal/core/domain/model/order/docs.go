// Package order models a customer's purchase and its forward-only status lifecycle.
//
// An Order carries a customer block, line items with frozen product snapshots, the
// distinct vendors involved, and an append-only activity log. Status changes go
// through Advance (next step) or AdvanceTo (next step, asserted by the caller);
// both fail with ErrNoTransitionAvailable once the order is InvoiceSettled.
package order
