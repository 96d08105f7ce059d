package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrAddProductToOrderCommandIsNotConstructed = errors.New(
		"AddProductToOrderCommand must be created via NewAddProductToOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be a positive integer")
)

// AddProductToOrderCommand represents a request to add a quantity of one
// catalog product to an existing pending order.
//
// Example:
//
//	cmd, err := NewAddProductToOrderCommand(orderID, productID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewAddProductToOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add product: %w", err)
//	}
type AddProductToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddProductToOrderCommand creates a command to add a product to an order.
// The quantity is checked against the aggregate's minimum before any lookup
// happens, so an invalid quantity never costs a round trip to storage.
func NewAddProductToOrderCommand(orderID, productID int64, quantity int) (AddProductToOrderCommand, error) {
	cmd := AddProductToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddProductToOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductToOrderCommandIsNotConstructed if validation fails.
func (c AddProductToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddProductToOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mutate.
func (c AddProductToOrderCommand) OrderID() int64 {
	return c.orderID
}

// ProductID returns the identifier of the catalog product to add.
func (c AddProductToOrderCommand) ProductID() int64 {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddProductToOrderCommand) Quantity() int {
	return c.quantity
}

func (c *AddProductToOrderCommand) setOrderID(orderID int64) error {
	if orderID < 1 {
		return ErrOrderIDIsInvalid
	}
	c.orderID = orderID
	return nil
}

func (c *AddProductToOrderCommand) setProductID(productID int64) error {
	if productID < MinProductID {
		return ErrProductIDIsInvalid
	}
	c.productID = productID
	return nil
}

func (c *AddProductToOrderCommand) setQuantity(quantity int) error {
	if quantity < order.MinItemQuantity {
		return order.ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
