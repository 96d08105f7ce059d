package queries

import (
	"errors"
	"time"

	"orders/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves all orders still in the Pending status.
// Used for backlog monitoring; pending orders are the only ones this module
// ever mutates.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a parameterless query for pending orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is a summary row for one pending order.
type GetPendingOrdersQueryResponse struct {
	ID         int64
	Reference  uuid.UUID
	TotalPrice float64
	CreatedAt  time.Time
}
