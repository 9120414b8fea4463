package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice when nothing matches.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders").
		Select("id, number, status, customer, vendors, total, created_at, updated_at")
	if status, ok := query.Status(); ok {
		tx = tx.Where("status = ?", int(status))
	}

	rows, err := tx.Order("created_at DESC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary           OrderSummary
			id                uuid.UUID
			status            int
			customer, vendors []byte
			total             decimal.Decimal
			createdAt         time.Time
			updatedAt         time.Time
		)
		if err = rows.Scan(&id, &summary.Number, &status, &customer, &vendors, &total, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if summary.ID, err = uuidFrom(id); err != nil {
			return nil, err
		}
		summary.Status = order.Status(status)
		summary.Total = total
		summary.CreatedAt = createdAt
		summary.UpdatedAt = updatedAt
		if err = errors.Join(decodeJSON(customer, &summary.Customer), decodeJSON(vendors, &summary.Vendors)); err != nil {
			return nil, err
		}

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
