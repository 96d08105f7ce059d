// Package productrepo implements the read-only product lookup over
// PostgreSQL. The catalog module owns the products table; this adapter only
// reads from it.
package productrepo

import (
	"orders/internal/core/domain/model/product"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Title       string
	Description string
	Price       float64
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to the product read model.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Title, dto.Description, dto.Price)
}
