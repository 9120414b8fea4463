// Package queries contains the read-side use cases. Handlers read the tables
// directly with SQL and return flat views; they never load aggregates.
package queries

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/invoice"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Clock supplies the time used for computed fields such as IsOverdue.
type Clock func() time.Time

type CustomerView struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	DeliveryArea string `json:"deliveryArea,omitempty"`
	DeliverySlot string `json:"deliverySlot,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type OrderLineView struct {
	ProductID  string          `json:"productId"`
	Quantity   int             `json:"quantity"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	VendorID   string          `json:"vendorId,omitempty"`
	VendorName string          `json:"vendorName,omitempty"`
}

type VendorView struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ActivityView struct {
	UserID     string       `json:"userId"`
	UserEmail  string       `json:"userEmail,omitempty"`
	UserName   string       `json:"userName,omitempty"`
	Action     string       `json:"action"`
	FromStatus order.Status `json:"fromStatus"`
	ToStatus   order.Status `json:"toStatus"`
	Notes      string       `json:"notes,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}

// OrderSummary is a row of the admin order list.
type OrderSummary struct {
	ID        kernel.UUID
	Number    string
	Status    order.Status
	Customer  CustomerView
	Vendors   []VendorView
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderDetails is the admin order screen. Activities are newest first.
type OrderDetails struct {
	OrderSummary
	Lines      []OrderLineView
	Activities []ActivityView
	Version    int64
}

type InvoiceItemView struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type InvoiceView struct {
	ID                   kernel.UUID
	Number               string
	OrderID              kernel.UUID
	VendorID             kernel.UUID
	VendorName           string
	Customer             CustomerView
	Items                []InvoiceItemView
	TotalAmount          decimal.Decimal
	Status               invoice.Status
	IssuedDate           time.Time
	DueDate              time.Time
	SettledDate          *time.Time
	CommissionPercentage decimal.Decimal
	CommissionAmount     decimal.Decimal
	IsOverdue            bool
}

func uuidFrom(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

func decodeJSON(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
