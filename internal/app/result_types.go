package app

import "order-service/internal/core"

// OrderListResult is returned by ListOrders.
type OrderListResult struct {
	Orders []core.OrderSummary
}

// OrderDetailListResult is returned by ListOrdersByStatus.
type OrderDetailListResult struct {
	Orders []core.OrderDetail
}

// OrderResult is returned by GetOrder and CreateOrder.
type OrderResult struct {
	Order *core.OrderDetail
}

// UpdateStatusResult is returned by UpdateOrderStatus. Updated is false when
// the order does not exist.
type UpdateStatusResult struct {
	Updated bool
}

// ProfitResult is returned by the profit report operations.
type ProfitResult struct {
	Message string
}
