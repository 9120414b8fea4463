package kernel

import (
	"fmt"
	"strings"
	"time"
)

const (
	OrderNumberPrefix   = "ORD"
	InvoiceNumberPrefix = "INV"

	documentNumberDateLayout = "20060102"
	documentNumberSuffixLen  = 12
)

// NewDocumentNumber builds a human-readable number such as ORD-20240101-9F0C2A7B41D3.
// The suffix is taken from the document's own random identifier; the stores also keep
// a unique index on the number, so a collision fails the insert instead of being kept.
func NewDocumentNumber(prefix string, id UUID, at time.Time) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	suffix := strings.ToUpper(hex[len(hex)-documentNumberSuffixLen:])
	return fmt.Sprintf("%s-%s-%s", prefix, at.UTC().Format(documentNumberDateLayout), suffix)
}
