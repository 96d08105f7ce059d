package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
)

// ErrOrderPersistenceFailed masks any persistence fault raised while creating
// an order. The underlying cause is deliberately discarded; callers only
// learn that the save failed.
var ErrOrderPersistenceFailed = errors.New("failed to create the order")

// CreateOrderCommandHandler handles the business logic for order creation.
// Constructs a new pending order from the validated command input and
// persists it within a transaction.
//
// Note: the order is seeded directly with the caller-supplied product ids and
// total; no items are built and no catalog prices are consulted on this path.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Uses a transaction to ensure the order is either fully persisted or not at
// all; any persistence fault surfaces as ErrOrderPersistenceFailed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.ProductIDs(), cmd.TotalPrice())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ErrOrderPersistenceFailed
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return ErrOrderPersistenceFailed
	}

	if err = uow.Commit(ctx); err != nil {
		return ErrOrderPersistenceFailed
	}

	return nil
}
