package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is a named order status label (e.g. "Created", "Completed").
type Status struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Service is a service line that products belong to and order items reference.
type Service struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Product is a sellable item. Every product belongs to exactly one service;
// unit cost and unit price are the source of truth for all order totals.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ServiceID uuid.UUID       `json:"service_id"`
}

// OrderSummary is the list-view projection of an order: totals and item
// count, but no expanded items.
type OrderSummary struct {
	ID         uuid.UUID       `json:"id"`
	ResellerID uuid.UUID       `json:"reseller_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	StatusID   uuid.UUID       `json:"status_id"`
	StatusName string          `json:"status_name"` // joined from statuses
	ItemCount  int             `json:"item_count"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderDetail is the full projection of an order: the summary totals plus
// every line item expanded with product and service data.
type OrderDetail struct {
	ID         uuid.UUID         `json:"id"`
	ResellerID uuid.UUID         `json:"reseller_id"`
	CustomerID uuid.UUID         `json:"customer_id"`
	StatusID   uuid.UUID         `json:"status_id"`
	StatusName string            `json:"status_name"`
	TotalCost  decimal.Decimal   `json:"total_cost"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	Items      []OrderItemDetail `json:"items"`
}

// OrderItemDetail is one expanded line item on an OrderDetail. Unit cost and
// price come from the referenced product; line totals are unit × quantity.
type OrderItemDetail struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"` // joined from services
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"` // joined from products
	UnitCost    decimal.Decimal `json:"unit_cost"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Quantity    int             `json:"quantity"`
}

// CreateOrderInput is the input for creating a new order. The order and item
// identifiers are generated by the service; CreatedAt is caller-supplied.
type CreateOrderInput struct {
	ResellerID uuid.UUID
	CustomerID uuid.UUID
	StatusID   uuid.UUID
	CreatedAt  time.Time
	Items      []OrderItemInput
}

// OrderItemInput is a single line within a CreateOrderInput.
type OrderItemInput struct {
	ProductID uuid.UUID
	ServiceID uuid.UUID
	Quantity  int
}
