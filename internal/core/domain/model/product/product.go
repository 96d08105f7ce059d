// Package product contains the catalog product read model.
// Products are owned and mutated by the catalog; within the order context
// they only provide the identifier and the unit price captured into order
// items at the moment a product is added.
package product

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is a read-only catalog entry from the order context's point of
// view. The price is the current catalog price; orders snapshot it into
// their items and never read it back afterwards.
type Product struct {
	id          int64
	title       string
	description string
	price       float64

	isConstructed bool
}

// NewProduct creates a catalog product that has not been persisted yet.
// The identifier is assigned by the persistence layer on first save.
func NewProduct(title, description string, price float64) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setTitle(title),
		p.setDescription(description),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from its persisted state.
func RestoreProduct(id int64, title, description string, price float64) (*Product, error) {
	if id < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", id))
	}

	p, err := NewProduct(title, description, price)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's identifier, 0 before the first save.
func (p *Product) ID() int64 {
	return p.id
}

// Title returns the product's display title.
func (p *Product) Title() string {
	return p.title
}

// Description returns the product's description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog unit price.
func (p *Product) Price() float64 {
	return p.price
}

func (p *Product) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Product) setDescription(description string) error {
	p.description = description
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}
