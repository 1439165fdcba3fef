package queries

import (
	"context"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnfinishedOrdersQueryHandler reads the in-flight order listing from the database.
type GetUnfinishedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfinishedOrdersQueryHandler creates a handler for the in-flight listing.
func NewGetUnfinishedOrdersQueryHandler(db *gorm.DB) GetUnfinishedOrdersQueryHandler {
	return GetUnfinishedOrdersQueryHandler{db: db}
}

// Handle executes the query. Terminal orders (delivered or cancelled) are
// excluded; the rest come back oldest first so the longest-waiting orders
// top the list.
func (h GetUnfinishedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnfinishedOrdersQuery,
) ([]GetUnfinishedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnfinishedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			first_name || ' ' || last_name,
			total_amount,
			status,
			placed_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY placed_at
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnfinishedOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.Customer,
			&resp.TotalAmount,
			&status,
			&resp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
