package invoice

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status is the billing state of an invoice. Overdue exists for display and
// filtering; nothing assigns it automatically.
type Status int

const (
	Unknown Status = iota
	Pending
	Issued
	Overdue
	Settled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Pending: "Pending",
		Issued:  "Issued",
		Overdue: "Overdue",
		Settled: "Settled",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"invoice status is invalid",
		fmt.Errorf("%q is not a known invoice status", s),
	)
}

func (s Status) Validate() error {
	if s < Pending || s > Settled {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoice status is invalid",
			fmt.Errorf("%d is not a valid invoice status", s),
		)
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
