package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// ErrNoTransitionAvailable is returned when an order has no next status: it is
// already settled or its status is not recognized.
var ErrNoTransitionAvailable = errors.New("no transition available")

// Status is the position of an order in its fulfilment and billing lifecycle.
//
//	PaymentPending -> PaymentConfirmed -> OrderProcessing -> OrderShipped
//	    -> OrderDelivered -> InvoiceIssued -> InvoiceSettled
//
// An order only ever moves one step forward.
type Status int

const (
	// Unknown is the zero value and never a valid order status.
	Unknown Status = iota
	PaymentPending
	PaymentConfirmed
	OrderProcessing
	OrderShipped
	OrderDelivered
	// InvoiceIssued triggers per-vendor invoice generation.
	InvoiceIssued
	// InvoiceSettled is terminal.
	InvoiceSettled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		PaymentPending:   "Payment Pending",
		PaymentConfirmed: "Payment Confirmed",
		OrderProcessing:  "Order Processing",
		OrderShipped:     "Order Shipped",
		OrderDelivered:   "Order Delivered",
		InvoiceIssued:    "Invoice Issued",
		InvoiceSettled:   "Invoice Settled",
	}
}

// statusSequence lists the valid statuses in lifecycle order.
func statusSequence() []Status {
	return []Status{
		PaymentPending,
		PaymentConfirmed,
		OrderProcessing,
		OrderShipped,
		OrderDelivered,
		InvoiceIssued,
		InvoiceSettled,
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return statusSequence()
}

// ParseStatus accepts a display name ("Order Shipped") or its compact form
// ("order_shipped", "ORDERSHIPPED"), case-insensitively.
func ParseStatus(s string) (Status, error) {
	key := normalizeStatusName(s)
	for _, status := range statusSequence() {
		if normalizeStatusName(status.String()) == key {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", s),
	)
}

func normalizeStatusName(s string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

func (s Status) Validate() error {
	if s <= Unknown || s > InvoiceSettled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == InvoiceSettled
}

// GetNextStatus returns the status immediately after current. ok is false when
// current is terminal or not a valid status.
func GetNextStatus(current Status) (next Status, ok bool) {
	if current.Validate() != nil || current.IsTerminal() {
		return Unknown, false
	}
	return current + 1, true
}

// Next is GetNextStatus reported as an error wrapping ErrNoTransitionAvailable.
func (s Status) Next() (Status, error) {
	next, ok := GetNextStatus(s)
	if !ok {
		return Unknown, fmt.Errorf("%w from %s", ErrNoTransitionAvailable, s)
	}
	return next, nil
}
