package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListInvoicesQueryHandler struct {
	db  *gorm.DB
	now Clock
}

func NewListInvoicesQueryHandler(db *gorm.DB, now Clock) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{db: db, now: now}
}

// Handle returns invoices newest first with IsOverdue evaluated at the current time.
func (h ListInvoicesQueryHandler) Handle(ctx context.Context, query ListInvoicesQuery) ([]InvoiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	now := h.now().UTC()

	tx := h.db.WithContext(ctx).
		Table("invoices").
		Select(`id, number, order_id, vendor_id, vendor_name, customer, items, total_amount, status,
			issued_date, due_date, settled_date, commission_percentage, commission_amount`)
	if !query.OrderID().IsZero() {
		tx = tx.Where("order_id = ?", query.OrderID().Bytes())
	}
	if !query.VendorID().IsZero() {
		tx = tx.Where("vendor_id = ?", query.VendorID().Bytes())
	}
	switch query.Status() {
	case invoice.Unknown:
	case invoice.Overdue:
		tx = tx.Where("status <> ? AND due_date < ?", int(invoice.Settled), now)
	default:
		tx = tx.Where("status = ?", int(query.Status()))
	}

	rows, err := tx.Order("issued_date DESC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]InvoiceView, 0)
	for rows.Next() {
		view, scanErr := scanInvoice(rows, now)
		if scanErr != nil {
			return nil, scanErr
		}
		invoices = append(invoices, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner, now time.Time) (InvoiceView, error) {
	var (
		view                      InvoiceView
		id, orderID, vendorID     uuid.UUID
		customer, items           []byte
		total, percentage, amount decimal.Decimal
		status                    int
		issued, due               time.Time
		settled                   *time.Time
	)
	err := row.Scan(
		&id,
		&view.Number,
		&orderID,
		&vendorID,
		&view.VendorName,
		&customer,
		&items,
		&total,
		&status,
		&issued,
		&due,
		&settled,
		&percentage,
		&amount,
	)
	if err != nil {
		return InvoiceView{}, err
	}

	if view.ID, err = uuidFrom(id); err != nil {
		return InvoiceView{}, err
	}
	if view.OrderID, err = uuidFrom(orderID); err != nil {
		return InvoiceView{}, err
	}
	if view.VendorID, err = uuidFrom(vendorID); err != nil {
		return InvoiceView{}, err
	}
	if err = errors.Join(decodeJSON(customer, &view.Customer), decodeJSON(items, &view.Items)); err != nil {
		return InvoiceView{}, err
	}

	view.TotalAmount = total
	view.Status = invoice.Status(status)
	view.IssuedDate = issued
	view.DueDate = due
	view.SettledDate = settled
	view.CommissionPercentage = percentage
	view.CommissionAmount = amount
	view.IsOverdue = view.Status != invoice.Settled && now.After(due)

	return view, nil
}
