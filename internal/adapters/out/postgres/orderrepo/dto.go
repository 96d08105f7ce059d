// Package orderrepo implements the order repository over PostgreSQL.
// It maps the order aggregate to its relational representation: the item
// list is stored as a jsonb document (items are the source of truth) and the
// denormalized product-id projection as a bigint array alongside it.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ItemDTO is the jsonb shape of one order line.
type ItemDTO struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// ItemsDTO stores the order lines as a single jsonb column.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer, serializing the item list to jsonb.
func (items ItemsDTO) Value() (driver.Value, error) {
	if items == nil {
		items = ItemsDTO{}
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner, deserializing the jsonb item list.
func (items *ItemsDTO) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*items = ItemsDTO{}
		return nil
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("cannot scan %T into ItemsDTO", src)
	}
}

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is assigned by the database on insert.
type OrderDTO struct {
	ID         int64         `gorm:"primaryKey;autoIncrement"`
	Reference  uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	ProductIDs pq.Int64Array `gorm:"type:bigint[]"`
	Items      ItemsDTO      `gorm:"type:jsonb"`
	TotalPrice float64
	Status     int `gorm:"index"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make(ItemsDTO, len(domainItems))
	for i, item := range domainItems {
		items[i] = ItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		Reference:  aggregate.Reference(),
		ProductIDs: pq.Int64Array(aggregate.ProductIDs()),
		Items:      items,
		TotalPrice: aggregate.TotalPrice(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain reconstructs an order aggregate from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, len(dto.Items))
	for i, item := range dto.Items {
		items[i] = order.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Reference,
		items,
		[]int64(dto.ProductIDs),
		dto.TotalPrice,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
