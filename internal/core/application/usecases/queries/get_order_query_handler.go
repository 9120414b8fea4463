package queries

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order row and decodes its JSON documents.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	details, err := NewGetOrderQueryHandler(db).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.ErrNotFound
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			customer,
			product_orders,
			vendors,
			activities,
			total,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id                   uuid.UUID
		status               int
		customer, lines      []byte
		vendors, activities  []byte
		total                decimal.Decimal
		createdAt, updatedAt time.Time
		details              OrderDetails
	)
	err := row.Scan(
		&id,
		&details.Number,
		&status,
		&customer,
		&lines,
		&vendors,
		&activities,
		&total,
		&createdAt,
		&updatedAt,
		&details.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderDetails{}, err
	}

	if details.ID, err = uuidFrom(id); err != nil {
		return OrderDetails{}, err
	}
	details.Status = order.Status(status)
	details.Total = total
	details.CreatedAt = createdAt
	details.UpdatedAt = updatedAt

	if err = errors.Join(
		decodeJSON(customer, &details.Customer),
		decodeJSON(lines, &details.Lines),
		decodeJSON(vendors, &details.Vendors),
		decodeJSON(activities, &details.Activities),
	); err != nil {
		return OrderDetails{}, err
	}

	sort.SliceStable(details.Activities, func(i, j int) bool {
		return details.Activities[i].Timestamp.After(details.Activities[j].Timestamp)
	})

	return details, nil
}
