package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(42)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s totals %.2f\n", resp.Reference, resp.TotalPrice)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Absence is reported as an errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp     GetOrderQueryResponse
		ids      pq.Int64Array
		rawItems []byte
		status   int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			product_ids,
			items,
			total_price,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Reference,
		&ids,
		&rawItems,
		&resp.TotalPrice,
		&status,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ProductIDs = []int64(ids)
	resp.Status = order.Status(status).String()

	items := make([]ItemView, 0)
	if len(rawItems) > 0 {
		if err = json.Unmarshal(rawItems, &items); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}
	resp.Items = items

	return resp, nil
}
