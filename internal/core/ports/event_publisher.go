package ports

import (
	"context"
	"time"
)

// Event is a fact about the order workflow announced to other systems.
type Event interface {
	EventName() string
}

type OrderPlaced struct {
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Total       string    `json:"total"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func (OrderPlaced) EventName() string { return "order.placed" }

type OrderStatusChanged struct {
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	FromStatus  string    `json:"fromStatus"`
	ToStatus    string    `json:"toStatus"`
	ChangedBy   string    `json:"changedBy"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func (OrderStatusChanged) EventName() string { return "order.status_changed" }

type InvoicesIssued struct {
	OrderID    string    `json:"orderId"`
	InvoiceIDs []string  `json:"invoiceIds"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (InvoicesIssued) EventName() string { return "invoice.issued" }

type InvoiceSettled struct {
	InvoiceID   string    `json:"invoiceId"`
	SettledDate time.Time `json:"settledDate"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func (InvoiceSettled) EventName() string { return "invoice.settled" }

// EventPublisher delivers events. Callers treat delivery as best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
