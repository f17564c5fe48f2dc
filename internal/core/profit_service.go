package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// completedStatusName is the fixed status filter for profit reports. The
// lookup is case-insensitive, so seed casing does not matter.
const completedStatusName = "completed"

const msgBadMonth = "Please insert valid month number"

// ProfitService computes profit reports over completed orders. Profit is
// Σ(totalPrice − totalCost) across orders created in the requested period.
type ProfitService interface {
	// CalculateProfitByMonth sums profit for completed orders created in the
	// given calendar month, across all years. Month must be in [1,12].
	CalculateProfitByMonth(ctx context.Context, month int) (string, error)

	// CalculateProfitByMonthAndYear restricts the sum to one calendar year.
	CalculateProfitByMonthAndYear(ctx context.Context, month, year int) (string, error)
}

type profitService struct {
	orders OrderService
}

// NewProfitService constructs a ProfitService on top of the given
// OrderService, so the totals come from the same projection every other
// read path uses.
func NewProfitService(orders OrderService) ProfitService {
	return &profitService{orders: orders}
}

func (s *profitService) CalculateProfitByMonth(ctx context.Context, month int) (string, error) {
	profit, err := s.profitForPeriod(ctx, month, 0, false)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Profit made in month number %d through all years is %s", month, profit), nil
}

func (s *profitService) CalculateProfitByMonthAndYear(ctx context.Context, month, year int) (string, error) {
	profit, err := s.profitForPeriod(ctx, month, year, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Profit made in month number %d in year %d is %s", month, year, profit), nil
}

// profitForPeriod sums (TotalPrice − TotalCost) across completed orders whose
// creation timestamp falls in the given month, and in the given year when
// filterYear is set. Zero qualifying orders yields a zero profit, not an
// error.
func (s *profitService) profitForPeriod(ctx context.Context, month, year int, filterYear bool) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, NewValidationError(msgBadMonth)
	}

	completed, err := s.orders.GetOrdersByStatus(ctx, completedStatusName)
	if err != nil {
		return decimal.Zero, err
	}

	profit := decimal.Zero
	for _, order := range completed {
		if !createdInPeriod(order.CreatedAt, month, year, filterYear) {
			continue
		}
		profit = profit.Add(order.TotalPrice.Sub(order.TotalCost))
	}
	return profit, nil
}

// createdInPeriod reports whether t falls in the given calendar month, and in
// the given year when filterYear is set. Extraction uses the structured date
// fields directly; no string formatting is involved.
func createdInPeriod(t time.Time, month, year int, filterYear bool) bool {
	if int(t.Month()) != month {
		return false
	}
	return !filterYear || t.Year() == year
}
