package app

import (
	"context"
	"time"

	"order-service/internal/core"

	"github.com/google/uuid"
)

type appService struct {
	orderService  core.OrderService
	profitService core.ProfitService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(orderService core.OrderService, profitService core.ProfitService) ApplicationService {
	return &appService{
		orderService:  orderService,
		profitService: profitService,
	}
}

// ListOrders returns summaries for every order, newest first.
func (s *appService) ListOrders(ctx context.Context) (*OrderListResult, error) {
	orders, err := s.orderService.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &OrderListResult{Orders: orders}, nil
}

// GetOrder returns the full detail of one order.
func (s *appService) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderResult, error) {
	order, err := s.orderService.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderResult{Order: order}, nil
}

// ListOrdersByStatus returns details for all orders matching the status name.
func (s *appService) ListOrdersByStatus(ctx context.Context, statusName string) (*OrderDetailListResult, error) {
	orders, err := s.orderService.GetOrdersByStatus(ctx, statusName)
	if err != nil {
		return nil, err
	}
	return &OrderDetailListResult{Orders: orders}, nil
}

// CreateOrder validates references and persists the order atomically.
func (s *appService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResult, error) {
	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	items := make([]core.OrderItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = core.OrderItemInput{
			ProductID: it.ProductID,
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
		}
	}

	order, err := s.orderService.CreateOrder(ctx, core.CreateOrderInput{
		ResellerID: req.ResellerID,
		CustomerID: req.CustomerID,
		StatusID:   req.StatusID,
		CreatedAt:  createdAt,
		Items:      items,
	})
	if err != nil {
		return nil, err
	}
	return &OrderResult{Order: order}, nil
}

// UpdateOrderStatus sets a new status on an order.
func (s *appService) UpdateOrderStatus(ctx context.Context, orderID, statusID uuid.UUID) (*UpdateStatusResult, error) {
	updated, err := s.orderService.UpdateOrderStatus(ctx, orderID, statusID)
	if err != nil {
		return nil, err
	}
	return &UpdateStatusResult{Updated: updated}, nil
}

// ProfitByMonth renders the profit report for one calendar month across all years.
func (s *appService) ProfitByMonth(ctx context.Context, month int) (*ProfitResult, error) {
	message, err := s.profitService.CalculateProfitByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	return &ProfitResult{Message: message}, nil
}

// ProfitByMonthAndYear renders the profit report for one calendar month of one year.
func (s *appService) ProfitByMonthAndYear(ctx context.Context, month, year int) (*ProfitResult, error) {
	message, err := s.profitService.CalculateProfitByMonthAndYear(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return &ProfitResult{Message: message}, nil
}
