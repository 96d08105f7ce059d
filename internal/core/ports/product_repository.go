package ports

import (
	"context"

	"orders/internal/core/domain/model/product"
)

// ProductRepository defines the read-only lookup contract for catalog
// products. The catalog module owns product writes; the order context only
// needs an identifier-to-price lookup.
type ProductRepository interface {
	// Get retrieves a product by its identifier.
	// Absence is reported as an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*product.Product, error)
}
