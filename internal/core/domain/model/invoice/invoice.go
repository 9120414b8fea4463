package invoice

import (
	"errors"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// PaymentTermDays is the fixed offset between issue and due date.
const PaymentTermDays = 30

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice bills one vendor for its share of one order. It references the order
// by id only; the order does not know about its invoices.
type Invoice struct {
	id          kernel.UUID
	number      string
	orderID     kernel.UUID
	vendorID    kernel.UUID
	vendorName  string
	customer    order.Customer
	items       []Item
	totalAmount kernel.Money
	status      Status
	issuedDate  time.Time
	dueDate     time.Time
	settledDate *time.Time
	commission  Commission
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewInvoice issues an invoice dated issuedAt, due PaymentTermDays later, with
// the total and commission computed from items.
func NewInvoice(
	id, orderID, vendorID kernel.UUID,
	vendorName string,
	customer order.Customer,
	items []Item,
	issuedAt time.Time,
) (*Invoice, error) {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("invoice items")
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		vendorID.Validate(),
		customer.Validate(),
		itemsErr,
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.totalPrice)
	}

	issuedAt = issuedAt.UTC()
	return &Invoice{
		id:            id,
		number:        kernel.NewDocumentNumber(kernel.InvoiceNumberPrefix, id, issuedAt),
		orderID:       orderID,
		vendorID:      vendorID,
		vendorName:    strings.TrimSpace(vendorName),
		customer:      customer,
		items:         slices.Clone(items),
		totalAmount:   total,
		status:        Issued,
		issuedDate:    issuedAt,
		dueDate:       DueDate(issuedAt),
		commission:    NewCommission(total, CommissionPercentage),
		createdAt:     issuedAt,
		updatedAt:     issuedAt,
		isConstructed: true,
	}, nil
}

// RestoreInvoice rebuilds an invoice from storage.
func RestoreInvoice(
	id kernel.UUID,
	number string,
	orderID, vendorID kernel.UUID,
	vendorName string,
	customer order.Customer,
	items []Item,
	totalAmount kernel.Money,
	status Status,
	issuedDate, dueDate time.Time,
	settledDate *time.Time,
	commission Commission,
	createdAt, updatedAt time.Time,
) (*Invoice, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), vendorID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		number:        number,
		orderID:       orderID,
		vendorID:      vendorID,
		vendorName:    vendorName,
		customer:      customer,
		items:         slices.Clone(items),
		totalAmount:   totalAmount,
		status:        status,
		issuedDate:    issuedDate,
		dueDate:       dueDate,
		settledDate:   settledDate,
		commission:    commission,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// DueDate is issued plus PaymentTermDays calendar days.
func DueDate(issued time.Time) time.Time {
	return issued.AddDate(0, 0, PaymentTermDays)
}

func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

func (i *Invoice) ID() kernel.UUID           { return i.id }
func (i *Invoice) Number() string            { return i.number }
func (i *Invoice) OrderID() kernel.UUID      { return i.orderID }
func (i *Invoice) VendorID() kernel.UUID     { return i.vendorID }
func (i *Invoice) VendorName() string        { return i.vendorName }
func (i *Invoice) Customer() order.Customer  { return i.customer }
func (i *Invoice) Items() []Item             { return slices.Clone(i.items) }
func (i *Invoice) TotalAmount() kernel.Money { return i.totalAmount }
func (i *Invoice) Status() Status            { return i.status }
func (i *Invoice) IssuedDate() time.Time     { return i.issuedDate }
func (i *Invoice) DueDate() time.Time        { return i.dueDate }
func (i *Invoice) SettledDate() *time.Time   { return i.settledDate }
func (i *Invoice) Commission() Commission    { return i.commission }
func (i *Invoice) CreatedAt() time.Time      { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time      { return i.updatedAt }

// IsOverdue is evaluated against now and never stored.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.status != Settled && now.After(i.dueDate)
}

// MarkSettled settles the invoice on settledAt regardless of its current status.
func (i *Invoice) MarkSettled(settledAt, now time.Time) {
	settled := settledAt.UTC()
	i.status = Settled
	i.settledDate = &settled
	i.updatedAt = now.UTC()
}
