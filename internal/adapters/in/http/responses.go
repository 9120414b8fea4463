package http

import (
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	VendorID  string `json:"vendorId,omitempty"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
	Available bool   `json:"available"`
}

type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartLine `json:"items"`
	Total     string     `json:"total"`
}

type CheckoutResponse struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Total       string `json:"total"`
	WhatsAppURL string `json:"whatsappUrl"`
}

type OrderSummary struct {
	ID         string               `json:"id"`
	Number     string               `json:"number"`
	Status     string               `json:"status"`
	NextStatus string               `json:"nextStatus,omitempty"`
	Customer   queries.CustomerView `json:"customer"`
	Vendors    []queries.VendorView `json:"vendors"`
	Total      string               `json:"total"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

type Activity struct {
	UserID     string    `json:"userId"`
	UserEmail  string    `json:"userEmail,omitempty"`
	UserName   string    `json:"userName,omitempty"`
	Action     string    `json:"action"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type OrderLine struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
	Subtotal   string `json:"subtotal"`
	VendorID   string `json:"vendorId,omitempty"`
	VendorName string `json:"vendorName,omitempty"`
}

type Order struct {
	OrderSummary
	Version    int64       `json:"version"`
	Items      []OrderLine `json:"items"`
	Activities []Activity  `json:"activities"`
}

type Transition struct {
	OrderID      string   `json:"orderId"`
	OrderNumber  string   `json:"orderNumber"`
	FromStatus   string   `json:"fromStatus"`
	ToStatus     string   `json:"toStatus"`
	InvoiceIDs   []string `json:"invoiceIds,omitempty"`
	InvoiceError string   `json:"invoiceError,omitempty"`
}

type GenerateInvoicesResponse struct {
	OrderID        string   `json:"orderId"`
	InvoiceIDs     []string `json:"invoiceIds"`
	SkippedVendors []string `json:"skippedVendors"`
}

type Invoice struct {
	ID                   string                    `json:"id"`
	Number               string                    `json:"number"`
	OrderID              string                    `json:"orderId"`
	VendorID             string                    `json:"vendorId"`
	VendorName           string                    `json:"vendorName"`
	Customer             queries.CustomerView      `json:"customer"`
	Items                []queries.InvoiceItemView `json:"items"`
	Status               string                    `json:"status"`
	TotalAmount          string                    `json:"totalAmount"`
	CommissionPercentage string                    `json:"commissionPercentage"`
	CommissionAmount     string                    `json:"commissionAmount"`
	IssuedDate           time.Time                 `json:"issuedDate"`
	DueDate              time.Time                 `json:"dueDate"`
	SettledDate          *time.Time                `json:"settledDate"`
	IsOverdue            bool                      `json:"isOverdue"`
}

// money renders amounts the way kernel.Money does, without trailing zeros.
func money(d decimal.Decimal) string {
	return d.String()
}

func ids(in []kernel.UUID) []string {
	out := make([]string, 0, len(in))
	for _, id := range in {
		out = append(out, id.String())
	}
	return out
}

func toCart(view queries.CartView) Cart {
	items := make([]CartLine, 0, len(view.Lines))
	for _, line := range view.Lines {
		cl := CartLine{
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			Price:     money(line.Price),
			Quantity:  line.Quantity,
			Subtotal:  money(line.Subtotal),
			Available: line.Available,
		}
		if !line.VendorID.IsZero() {
			cl.VendorID = line.VendorID.String()
		}
		items = append(items, cl)
	}
	return Cart{SessionID: view.SessionID, Items: items, Total: money(view.Total)}
}

func toOrderSummary(s queries.OrderSummary) OrderSummary {
	summary := OrderSummary{
		ID:        s.ID.String(),
		Number:    s.Number,
		Status:    s.Status.String(),
		Customer:  s.Customer,
		Vendors:   s.Vendors,
		Total:     money(s.Total),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if summary.Vendors == nil {
		summary.Vendors = []queries.VendorView{}
	}
	if next, ok := order.GetNextStatus(s.Status); ok {
		summary.NextStatus = next.String()
	}
	return summary
}

func toOrder(d queries.OrderDetails) Order {
	items := make([]OrderLine, 0, len(d.Lines))
	for _, line := range d.Lines {
		items = append(items, OrderLine{
			ProductID:  line.ProductID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      money(line.Price),
			Subtotal:   money(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))),
			VendorID:   line.VendorID,
			VendorName: line.VendorName,
		})
	}

	activities := make([]Activity, 0, len(d.Activities))
	for _, a := range d.Activities {
		activities = append(activities, Activity{
			UserID:     a.UserID,
			UserEmail:  a.UserEmail,
			UserName:   a.UserName,
			Action:     a.Action,
			FromStatus: a.FromStatus.String(),
			ToStatus:   a.ToStatus.String(),
			Notes:      a.Notes,
			Timestamp:  a.Timestamp,
		})
	}

	return Order{
		OrderSummary: toOrderSummary(d.OrderSummary),
		Version:      d.Version,
		Items:        items,
		Activities:   activities,
	}
}

func toTransition(r commands.OrderTransitionResult) Transition {
	return Transition{
		OrderID:     r.OrderID.String(),
		OrderNumber: r.OrderNumber,
		FromStatus:  r.FromStatus.String(),
		ToStatus:    r.ToStatus.String(),
		InvoiceIDs:  ids(r.InvoiceIDs),
	}
}

func toInvoice(v queries.InvoiceView) Invoice {
	items := v.Items
	if items == nil {
		items = []queries.InvoiceItemView{}
	}
	return Invoice{
		ID:                   v.ID.String(),
		Number:               v.Number,
		OrderID:              v.OrderID.String(),
		VendorID:             v.VendorID.String(),
		VendorName:           v.VendorName,
		Customer:             v.Customer,
		Items:                items,
		Status:               v.Status.String(),
		TotalAmount:          money(v.TotalAmount),
		CommissionPercentage: v.CommissionPercentage.String(),
		CommissionAmount:     money(v.CommissionAmount),
		IssuedDate:           v.IssuedDate,
		DueDate:              v.DueDate,
		SettledDate:          v.SettledDate,
		IsOverdue:            v.IsOverdue,
	}
}
