package app

import (
	"time"

	"github.com/google/uuid"
)

// CreateOrderRequest is the input for creating a new order.
// CreatedAt zero value means "now".
type CreateOrderRequest struct {
	ResellerID uuid.UUID        `json:"reseller_id"`
	CustomerID uuid.UUID        `json:"customer_id"`
	StatusID   uuid.UUID        `json:"status_id"`
	CreatedAt  time.Time        `json:"created_at"`
	Items      []OrderItemInput `json:"items"`
}

// OrderItemInput is a single line within a CreateOrderRequest.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Quantity  int       `json:"quantity"`
}
