package app

import (
	"context"

	"github.com/google/uuid"
)

// ApplicationService is the single interface all adapters (Web, CLI) call.
// It decouples presentation from business logic; implementations contain no
// transport or display concerns.
type ApplicationService interface {
	// ListOrders returns summaries for every order, newest first.
	ListOrders(ctx context.Context) (*OrderListResult, error)

	// GetOrder returns the full detail of one order.
	// Absence surfaces as core.ErrOrderNotFound.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderResult, error)

	// ListOrdersByStatus returns details for all orders whose status name
	// matches case-insensitively; an empty list when none match.
	ListOrdersByStatus(ctx context.Context, statusName string) (*OrderDetailListResult, error)

	// CreateOrder validates references, persists the order atomically, and
	// returns the freshly aggregated detail.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResult, error)

	// UpdateOrderStatus sets a new status on an order. Unknown status is a
	// validation error; unknown order reports Updated=false.
	UpdateOrderStatus(ctx context.Context, orderID, statusID uuid.UUID) (*UpdateStatusResult, error)

	// ProfitByMonth renders the profit report for one calendar month across
	// all years.
	ProfitByMonth(ctx context.Context, month int) (*ProfitResult, error)

	// ProfitByMonthAndYear renders the profit report for one calendar month
	// of one year.
	ProfitByMonthAndYear(ctx context.Context, month, year int) (*ProfitResult, error)
}
