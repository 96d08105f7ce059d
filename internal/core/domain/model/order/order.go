package order

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// MinItemQuantity is the smallest quantity a single order item may carry.
	MinItemQuantity = 1

	// MaxItems is the maximum number of distinct products on one order.
	MaxItems = 5

	// MaxTotalPrice is the ceiling enforced on the order total by AddProduct.
	// Note: CreateOrder validates the caller-supplied total against its own,
	// lower ceiling. The two thresholds are kept separate on purpose.
	MaxTotalPrice = 2000.0
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrQuantityIsInvalid is returned when a quantity is below MinItemQuantity.
	ErrQuantityIsInvalid = errors.New("quantity is invalid")

	// ErrMaxItemsReached is returned when adding a new product would exceed MaxItems.
	ErrMaxItemsReached = errors.New("maximum number of products reached")

	// ErrMaxTotalPriceExceeded is returned when a mutation would push the
	// order total above MaxTotalPrice.
	ErrMaxTotalPriceExceeded = errors.New("maximum order total exceeded")

	// ErrIDAlreadyAssigned is returned when AssignID is called on an order
	// that already has a persistence identifier.
	ErrIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Item is a single order line. UnitPrice is the catalog price captured when
// the product was first added; it is never refreshed afterwards, even if the
// catalog price changes (price snapshot semantics). Items are replaced as a
// whole by the aggregate, never edited in place from outside.
type Item struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// Order is the purchase order aggregate root.
//
// Invariants held after every successful mutation:
//   - at most MaxItems items, each with Quantity >= MinItemQuantity
//   - at most one item per product
//   - totalPrice equals the sum of Quantity*UnitPrice over all items
//   - productIDs equals the item list's product ids, in item order
//
// The creation path is looser: NewOrder seeds productIDs and totalPrice
// directly from caller input with an empty item list, trusting the supplied
// total. Only AddProduct derives the total from priced items. This asymmetry
// mirrors the two distinct order-entry styles the module supports.
type Order struct {
	// id is the persistence identifier, 0 until the first save
	id int64

	// reference is the stable client-facing order identifier
	reference uuid.UUID

	// items holds the order lines, at most one per product
	items []Item

	// productIDs is the denormalized projection of items[*].ProductID,
	// except on freshly created orders where it carries the caller input
	productIDs []int64

	// totalPrice is the order total
	totalPrice float64

	// status is the lifecycle tag, Pending on creation
	status Status

	// createdAt is set once at construction
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Pending order seeded with the given product ids and
// total price. The item list starts empty; the supplied total is trusted as-is
// and is not derived from catalog prices. Range validation of the inputs is
// the caller's responsibility (see the CreateOrder use case).
func NewOrder(productIDs []int64, totalPrice float64) (*Order, error) {
	o := &Order{
		reference:     uuid.New(),
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setProductIDs(productIDs),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from its persisted state.
func RestoreOrder(
	id int64,
	reference uuid.UUID,
	items []Item,
	productIDs []int64,
	totalPrice float64,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if id < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", id))
	}
	if reference == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("reference")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		reference:     reference,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setItems(items),
		o.setProductIDs(productIDs),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the persistence identifier, 0 before the first save.
func (o *Order) ID() int64 {
	return o.id
}

// Reference returns the stable client-facing order identifier.
func (o *Order) Reference() uuid.UUID {
	return o.reference
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// ProductIDs returns a copy of the denormalized product-id projection.
func (o *Order) ProductIDs() []int64 {
	return slices.Clone(o.productIDs)
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Status returns the order's lifecycle tag.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID records the identifier assigned by the persistence layer on first
// save. It fails if the order already carries an identifier.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", id))
	}

	o.id = id
	return nil
}

// AddProduct adds the given quantity of a catalog product to the order.
//
// If the product is already on the order its quantity is increased and the
// original unit price snapshot is kept. Otherwise a new item is appended with
// the product's current price, provided the item count stays within MaxItems.
// The candidate total is recomputed from the proposed item list and checked
// against MaxTotalPrice before anything is committed.
//
// On any violation the order's observable state is left exactly as it was:
// the candidate item list is built in a side buffer and items, productIDs and
// totalPrice are only assigned together once every check has passed.
func (o *Order) AddProduct(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity < MinItemQuantity {
		return ErrQuantityIsInvalid
	}

	nextItems := slices.Clone(o.items)
	idx := slices.IndexFunc(nextItems, func(item Item) bool {
		return item.ProductID == p.ID()
	})

	if idx >= 0 {
		nextItems[idx].Quantity += quantity
	} else {
		if len(nextItems) >= MaxItems {
			return ErrMaxItemsReached
		}
		nextItems = append(nextItems, Item{
			ProductID: p.ID(),
			Quantity:  quantity,
			UnitPrice: p.Price(),
		})
	}

	nextTotalPrice := totalOf(nextItems)
	if nextTotalPrice > MaxTotalPrice {
		return ErrMaxTotalPriceExceeded
	}

	o.items = nextItems
	o.productIDs = projectProductIDs(nextItems)
	o.totalPrice = nextTotalPrice
	return nil
}

func totalOf(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

func projectProductIDs(items []Item) []int64 {
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	return ids
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if item.ProductID < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("%d is not a positive product identifier", item.ProductID),
			)
		}
		if item.Quantity < MinItemQuantity {
			return ErrQuantityIsInvalid
		}
	}
	if len(items) > MaxItems {
		return ErrMaxItemsReached
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setProductIDs(productIDs []int64) error {
	for _, id := range productIDs {
		if id < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"productIds",
				fmt.Errorf("%d is not a positive product identifier", id),
			)
		}
	}

	o.productIDs = slices.Clone(productIDs)
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if math.IsNaN(totalPrice) || math.IsInf(totalPrice, 0) {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice", fmt.Errorf("%v is not a finite number", totalPrice))
	}
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice", fmt.Errorf("%v is negative", totalPrice))
	}

	o.totalPrice = totalPrice
	return nil
}
