// Package queries contains read-only operations over the persisted order
// data. Queries bypass the aggregate and read through the database directly.
package queries

import (
	"errors"
	"time"

	"orders/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrQueryOrderIDIsInvalid = errors.New("order id must be a positive integer")
)

// GetOrderQuery retrieves the full persisted representation of one order.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its identifier.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID < 1 {
		return GetOrderQuery{}, ErrQueryOrderIDIsInvalid
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// ItemView is the read-side shape of one order line.
type ItemView struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// GetOrderQueryResponse is the full persisted representation of an order.
// Items is the source of truth; ProductIDs is the denormalized projection
// persisted alongside it.
type GetOrderQueryResponse struct {
	ID         int64
	Reference  uuid.UUID
	ProductIDs []int64
	Items      []ItemView
	TotalPrice float64
	Status     string
	CreatedAt  time.Time
}
