package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FindOrdersMissingInvoicesQueryHandler struct {
	db *gorm.DB
}

func NewFindOrdersMissingInvoicesQueryHandler(db *gorm.DB) FindOrdersMissingInvoicesQueryHandler {
	return FindOrdersMissingInvoicesQueryHandler{db: db}
}

// Handle returns, oldest first, the orders with no invoice at all or with a
// named listed vendor that has none. A listed vendor without a name may be
// billed to another vendor at generation time, so it is not expected to have
// an invoice of its own.
func (h FindOrdersMissingInvoicesQueryHandler) Handle(
	ctx context.Context,
	query FindOrdersMissingInvoicesQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT o.id
		FROM orders o
		WHERE o.status = @status
		  AND (
			NOT EXISTS (SELECT 1 FROM invoices i WHERE i.order_id = o.id)
			OR EXISTS (
				SELECT 1
				FROM jsonb_array_elements(o.vendors) AS v
				WHERE COALESCE(v->>'name', '') <> ''
				  AND NOT EXISTS (
					SELECT 1 FROM invoices i
					WHERE i.order_id = o.id AND i.vendor_id = (v->>'id')::uuid
				)
			)
		  )
		ORDER BY o.created_at`
	args := map[string]any{"status": int(order.InvoiceIssued)}
	if query.Limit() > 0 {
		sql += " LIMIT @limit"
		args["limit"] = query.Limit()
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		orderID, idErr := uuidFrom(id)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, orderID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
