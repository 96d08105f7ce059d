package commands

import (
	"context"
	"errors"
)

// ErrOrderSaveFailed masks any persistence fault raised while saving a
// mutated order. The underlying cause is deliberately discarded.
var ErrOrderSaveFailed = errors.New("failed to save the order")

// AddProductToOrderCommandHandler handles adding a product to an existing
// order. Loads the order and the product through the unit of work, delegates
// the mutation to the aggregate and persists the result in one transaction.
//
// Two concurrent invocations against the same order can race: there is no
// optimistic locking, so the last write wins at the persistence layer.
type AddProductToOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddProductToOrderCommandHandler creates a handler for adding products to
// orders. Requires a UoWFactory granting access to both repositories.
func NewAddProductToOrderCommandHandler(uowFactory UoWFactory) AddProductToOrderCommandHandler {
	return AddProductToOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-product command.
//
// Lookup failures surface as the repositories' not-found errors and aggregate
// violations propagate unchanged, so callers keep the specific failure kind.
// Only faults while persisting the mutated order are masked, as
// ErrOrderSaveFailed. Nothing is persisted when any step fails.
func (h *AddProductToOrderCommandHandler) Handle(ctx context.Context, cmd AddProductToOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ErrOrderSaveFailed
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existingOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	orderedProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = existingOrder.AddProduct(orderedProduct, cmd.Quantity()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existingOrder); err != nil {
		return ErrOrderSaveFailed
	}

	if err = uow.Commit(ctx); err != nil {
		return ErrOrderSaveFailed
	}

	return nil
}
