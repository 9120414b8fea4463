// Package invoicerepo maps invoice aggregates to the invoices table.
package invoicerepo

import (
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/invoice"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO is the row of the invoices table. The composite unique index on
// (order_id, vendor_id) keeps generation idempotent under concurrent runs.
type InvoiceDTO struct {
	ID                   uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Number               string                `gorm:"size:40;uniqueIndex;not null"`
	OrderID              uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_order_vendor,priority:1"`
	VendorID             uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_order_vendor,priority:2;index"`
	VendorName           string                `gorm:"not null"`
	Customer             orderrepo.CustomerDTO `gorm:"type:jsonb;serializer:json;not null"`
	Items                []ItemDTO             `gorm:"type:jsonb;serializer:json;not null"`
	TotalAmount          decimal.Decimal       `gorm:"type:numeric(14,2);not null"`
	Status               int                   `gorm:"index;not null"`
	IssuedDate           time.Time             `gorm:"index;not null"`
	DueDate              time.Time             `gorm:"not null"`
	SettledDate          *time.Time
	CommissionPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	CommissionAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt            time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime:false"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

type ItemDTO struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	items := make([]ItemDTO, 0, len(inv.Items()))
	for _, item := range inv.Items() {
		items = append(items, ItemDTO{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Decimal(),
			TotalPrice:  item.TotalPrice().Decimal(),
		})
	}

	return InvoiceDTO{
		ID:                   inv.ID().Bytes(),
		Number:               inv.Number(),
		OrderID:              inv.OrderID().Bytes(),
		VendorID:             inv.VendorID().Bytes(),
		VendorName:           inv.VendorName(),
		Customer:             orderrepo.CustomerFromDomain(inv.Customer()),
		Items:                items,
		TotalAmount:          inv.TotalAmount().Decimal(),
		Status:               int(inv.Status()),
		IssuedDate:           inv.IssuedDate(),
		DueDate:              inv.DueDate(),
		SettledDate:          inv.SettledDate(),
		CommissionPercentage: inv.Commission().Percentage(),
		CommissionAmount:     inv.Commission().Amount().Decimal(),
		CreatedAt:            inv.CreatedAt(),
		UpdatedAt:            inv.UpdatedAt(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	customer, err := dto.Customer.ToDomain()
	if err != nil {
		return nil, err
	}

	items := make([]invoice.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		unitPrice, priceErr := kernel.NewMoney(item.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		totalPrice, priceErr := kernel.NewMoney(item.TotalPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		items = append(items, invoice.RestoreItem(productID, item.ProductName, item.Quantity, unitPrice, totalPrice))
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	commission, err := kernel.NewMoney(dto.CommissionAmount)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		dto.Number,
		orderID,
		vendorID,
		dto.VendorName,
		customer,
		items,
		total,
		invoice.Status(dto.Status),
		dto.IssuedDate,
		dto.DueDate,
		dto.SettledDate,
		invoice.RestoreCommission(dto.CommissionPercentage, commission),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
