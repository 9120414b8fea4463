// Package orderrepo maps order aggregates to the orders table. Line items,
// vendors, customer and activity log are stored as JSONB documents next to the
// indexed scalar columns.
package orderrepo

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Number        string            `gorm:"size:40;uniqueIndex;not null"`
	Status        int               `gorm:"index;not null"`
	Customer      CustomerDTO       `gorm:"type:jsonb;serializer:json;not null"`
	ProductOrders []ProductOrderDTO `gorm:"type:jsonb;serializer:json;not null"`
	Vendors       []VendorRefDTO    `gorm:"type:jsonb;serializer:json;not null"`
	Activities    []ActivityDTO     `gorm:"type:jsonb;serializer:json;not null"`
	Total         decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	CreatedAt     time.Time         `gorm:"index;autoCreateTime:false"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime:false"`
	Version       int64             `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is shared with invoicerepo, which embeds the same document.
type CustomerDTO struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	DeliveryArea string `json:"deliveryArea,omitempty"`
	DeliverySlot string `json:"deliverySlot,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type ProductOrderDTO struct {
	ProductID  string          `json:"productId"`
	Quantity   int             `json:"quantity"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	VendorID   string          `json:"vendorId,omitempty"`
	VendorName string          `json:"vendorName,omitempty"`
}

type VendorRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ActivityDTO struct {
	UserID     string    `json:"userId"`
	UserEmail  string    `json:"userEmail,omitempty"`
	UserName   string    `json:"userName,omitempty"`
	Action     string    `json:"action"`
	FromStatus int       `json:"fromStatus"`
	ToStatus   int       `json:"toStatus"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func CustomerFromDomain(c order.Customer) CustomerDTO {
	return CustomerDTO{
		Name:         c.Name(),
		Phone:        c.Phone(),
		DeliveryArea: c.DeliveryArea(),
		DeliverySlot: c.DeliverySlot(),
		Notes:        c.Notes(),
	}
}

func (c CustomerDTO) ToDomain() (order.Customer, error) {
	return order.NewCustomer(c.Name, c.Phone, c.DeliveryArea, c.DeliverySlot, c.Notes)
}

func fromDomain(o *order.Order) OrderDTO {
	productOrders := make([]ProductOrderDTO, 0, len(o.ProductOrders()))
	for _, po := range o.ProductOrders() {
		vendor := po.Product().Vendor()
		dto := ProductOrderDTO{
			ProductID:  po.ProductID().String(),
			Quantity:   po.Quantity(),
			Name:       po.Product().Name(),
			Price:      po.Product().Price().Decimal(),
			VendorName: vendor.Name(),
		}
		if vendor.HasID() {
			dto.VendorID = vendor.ID().String()
		}
		productOrders = append(productOrders, dto)
	}

	vendors := make([]VendorRefDTO, 0, len(o.Vendors()))
	for _, v := range o.Vendors() {
		vendors = append(vendors, VendorRefDTO{ID: v.ID().String(), Name: v.Name()})
	}

	activities := make([]ActivityDTO, 0, len(o.Activities()))
	for _, a := range o.Activities() {
		activities = append(activities, ActivityDTO{
			UserID:     a.UserID(),
			UserEmail:  a.UserEmail(),
			UserName:   a.UserName(),
			Action:     a.Action(),
			FromStatus: int(a.FromStatus()),
			ToStatus:   int(a.ToStatus()),
			Notes:      a.Notes(),
			Timestamp:  a.Timestamp(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		Number:        o.Number(),
		Status:        int(o.Status()),
		Customer:      CustomerFromDomain(o.Customer()),
		ProductOrders: productOrders,
		Vendors:       vendors,
		Activities:    activities,
		Total:         o.Total().Decimal(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Version:       o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := dto.Customer.ToDomain()
	if err != nil {
		return nil, err
	}

	productOrders := make([]order.ProductOrder, 0, len(dto.ProductOrders))
	for _, line := range dto.ProductOrders {
		po, lineErr := line.toDomain()
		if lineErr != nil {
			return nil, lineErr
		}
		productOrders = append(productOrders, po)
	}

	vendors := make([]order.VendorRef, 0, len(dto.Vendors))
	for _, v := range dto.Vendors {
		vendorID, idErr := kernel.UUIDFromString(v.ID)
		if idErr != nil {
			return nil, idErr
		}
		vendors = append(vendors, order.NewVendorRef(vendorID, v.Name))
	}

	activities := make([]order.Activity, 0, len(dto.Activities))
	for _, a := range dto.Activities {
		activities = append(activities, order.RestoreActivity(
			a.UserID, a.UserEmail, a.UserName, a.Action,
			order.Status(a.FromStatus), order.Status(a.ToStatus),
			a.Notes, a.Timestamp,
		))
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		order.Status(dto.Status),
		customer,
		productOrders,
		vendors,
		activities,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

func (d ProductOrderDTO) toDomain() (order.ProductOrder, error) {
	productID, err := kernel.UUIDFromString(d.ProductID)
	if err != nil {
		return order.ProductOrder{}, err
	}

	var vendorID kernel.UUID
	if d.VendorID != "" {
		if vendorID, err = kernel.UUIDFromString(d.VendorID); err != nil {
			return order.ProductOrder{}, err
		}
	}

	price, err := kernel.NewMoney(d.Price)
	if err != nil {
		return order.ProductOrder{}, errors.Join(errors.New("stored price of "+d.Name+" is invalid"), err)
	}

	return order.NewProductOrder(
		productID,
		d.Quantity,
		order.NewProductSnapshot(d.Name, price, order.NewVendorRef(vendorID, d.VendorName)),
	)
}
