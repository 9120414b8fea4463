// Package commands contains the write-side use cases. Every handler validates its
// command, runs inside a unit of work and announces the outcome through the event
// publisher on a best-effort basis.
package commands

import (
	"context"
	"time"

	"storefront/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// OrderUoW is used by commands that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InvoiceUoW is used by commands that only touch invoices.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// UoW spans orders and invoices, as invoice generation reads one and writes the other.
	UoW interface {
		TxManager
		OrderRepoFactory
		InvoiceRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Clock supplies the current time to handlers.
type Clock func() time.Time
