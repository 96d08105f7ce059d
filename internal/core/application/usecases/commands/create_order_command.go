package commands

import (
	"errors"
	"math"
	"slices"

	"orders/internal/pkg/guard"
)

const (
	// MinProductsPerOrder is the minimum number of product ids accepted.
	MinProductsPerOrder = 1

	// MaxProductsPerOrder is the maximum number of product ids accepted.
	MaxProductsPerOrder = 5

	// MinProductID is the smallest valid product identifier.
	MinProductID = 1

	// MinOrderTotal is the lowest caller-supplied total accepted at creation.
	MinOrderTotal = 2.0

	// MaxOrderTotal is the highest caller-supplied total accepted at
	// creation. This ceiling is distinct from the aggregate's 2000 ceiling
	// enforced when products are added; the two thresholds come from
	// different business rules and are deliberately not unified.
	MaxOrderTotal = 500.0
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductIDsRequired     = errors.New("product ids are required")
	ErrOrderHasNoProducts     = errors.New("order must contain at least one product")
	ErrTooManyProducts        = errors.New("order cannot contain more than 5 products")
	ErrProductIDIsInvalid     = errors.New("product ids must be positive integers")
	ErrTotalPriceIsNotANumber = errors.New("total price must be a number")
	ErrTotalPriceTooLow       = errors.New("total price must be at least 2")
	ErrTotalPriceTooHigh      = errors.New("total price must not exceed 500")
)

// CreateOrderCommand represents a request to create a new purchase order from
// a selected set of catalog products and a caller-supplied total.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]int64{1, 2}, 200)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	productIDs []int64
	totalPrice float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates that product ids form a non-empty sequence of at most
// MaxProductsPerOrder positive integers and that the total price is a finite
// number within [MinOrderTotal, MaxOrderTotal]. Each violation fails with its
// own sentinel so callers can tell the kinds apart.
func NewCreateOrderCommand(productIDs []int64, totalPrice float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setProductIDs(productIDs),
		orderCommand.setTotalPrice(totalPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ProductIDs returns the selected catalog product identifiers.
func (c CreateOrderCommand) ProductIDs() []int64 {
	return slices.Clone(c.productIDs)
}

// TotalPrice returns the caller-supplied order total.
func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

func (c *CreateOrderCommand) setProductIDs(productIDs []int64) error {
	if productIDs == nil {
		return ErrProductIDsRequired
	}
	if len(productIDs) < MinProductsPerOrder {
		return ErrOrderHasNoProducts
	}
	if len(productIDs) > MaxProductsPerOrder {
		return ErrTooManyProducts
	}
	for _, id := range productIDs {
		if id < MinProductID {
			return ErrProductIDIsInvalid
		}
	}

	c.productIDs = slices.Clone(productIDs)
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice float64) error {
	if math.IsNaN(totalPrice) || math.IsInf(totalPrice, 0) {
		return ErrTotalPriceIsNotANumber
	}
	if totalPrice < MinOrderTotal {
		return ErrTotalPriceTooLow
	}
	if totalPrice > MaxOrderTotal {
		return ErrTotalPriceTooHigh
	}

	c.totalPrice = totalPrice
	return nil
}
