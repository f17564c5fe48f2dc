package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Validation messages surfaced to callers when a referenced entity is invalid.
const (
	msgBadStatus   = "Bad status sent"
	msgBadService  = "Bad service sent"
	msgBadProduct  = "Bad product sent or product does not belong to the linked service"
	msgBadQuantity = "Bad quantity sent, quantity must be a positive integer"
	msgNoItems     = "Order must have at least one item"
)

// OrderService manages order aggregation reads and order mutations.
type OrderService interface {
	// GetOrders returns summaries for every order, newest first. An empty
	// result is an empty slice, not an error.
	GetOrders(ctx context.Context) ([]OrderSummary, error)

	// GetOrderByID returns the full detail of one order, or ErrOrderNotFound.
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error)

	// GetOrdersByStatus returns details for all orders whose status name
	// matches statusName case-insensitively. No matches yields an empty slice.
	GetOrdersByStatus(ctx context.Context, statusName string) ([]OrderDetail, error)

	// CreateOrder validates the referenced status, services, and products,
	// then persists the order and its items in one transaction and returns
	// the freshly aggregated detail. A ValidationError aborts the whole
	// creation; nothing is persisted.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDetail, error)

	// UpdateOrderStatus sets the order's status. An unknown status is a
	// ValidationError regardless of whether the order exists; an unknown
	// order reports (false, nil).
	UpdateOrderStatus(ctx context.Context, orderID, statusID uuid.UUID) (bool, error)
}

type orderService struct {
	pool     *pgxpool.Pool
	statuses StatusService
	catalog  CatalogService
}

// NewOrderService constructs an OrderService backed by the given pool,
// using the lookup services for referential validation.
func NewOrderService(pool *pgxpool.Pool, statuses StatusService, catalog CatalogService) OrderService {
	return &orderService{pool: pool, statuses: statuses, catalog: catalog}
}

// orderProjectionQuery is the single source of the totals formula. Every read
// path (list, by ID, by status) goes through it so cost/price sums can never
// diverge between projections. The %s slot takes an optional WHERE clause.
const orderProjectionQuery = `
	SELECT o.id, o.reseller_id, o.customer_id, o.status_id, s.name, o.created_at,
	       COUNT(i.id) AS item_count,
	       COALESCE(SUM(i.quantity * p.unit_cost), 0)  AS total_cost,
	       COALESCE(SUM(i.quantity * p.unit_price), 0) AS total_price
	FROM orders o
	JOIN statuses s         ON s.id = o.status_id
	LEFT JOIN order_items i ON i.order_id = o.id
	LEFT JOIN products p    ON p.id = i.product_id
	%s
	GROUP BY o.id, o.reseller_id, o.customer_id, o.status_id, s.name, o.created_at
	ORDER BY o.created_at DESC`

// queryOrders runs the shared projection with an optional WHERE clause.
func (s *orderService) queryOrders(ctx context.Context, where string, args ...any) ([]OrderSummary, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(orderProjectionQuery, where), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []OrderSummary
	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(
			&o.ID, &o.ResellerID, &o.CustomerID, &o.StatusID, &o.StatusName, &o.CreatedAt,
			&o.ItemCount, &o.TotalCost, &o.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order row iteration error: %w", err)
	}
	return orders, nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *orderService) GetOrders(ctx context.Context) ([]OrderSummary, error) {
	return s.queryOrders(ctx, "")
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error) {
	summaries, err := s.queryOrders(ctx, "WHERE o.id = $1", orderID)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, ErrOrderNotFound
	}
	return s.expandOrder(ctx, summaries[0])
}

func (s *orderService) GetOrdersByStatus(ctx context.Context, statusName string) ([]OrderDetail, error) {
	summaries, err := s.queryOrders(ctx, "WHERE LOWER(s.name) = LOWER($1)", statusName)
	if err != nil {
		return nil, err
	}

	details := make([]OrderDetail, 0, len(summaries))
	for _, sum := range summaries {
		d, err := s.expandOrder(ctx, sum)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// expandOrder turns a summary into a detail by attaching the expanded items.
// The header totals stay exactly as the shared projection computed them.
func (s *orderService) expandOrder(ctx context.Context, sum OrderSummary) (*OrderDetail, error) {
	items, err := fetchOrderItemsQ(ctx, s.pool, sum.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID:         sum.ID,
		ResellerID: sum.ResellerID,
		CustomerID: sum.CustomerID,
		StatusID:   sum.StatusID,
		StatusName: sum.StatusName,
		TotalCost:  sum.TotalCost,
		TotalPrice: sum.TotalPrice,
		CreatedAt:  sum.CreatedAt,
		Items:      items,
	}, nil
}

// pgxRowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type pgxRowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func fetchOrderItemsQ(ctx context.Context, q pgxRowQuerier, orderID uuid.UUID) ([]OrderItemDetail, error) {
	rows, err := q.Query(ctx, `
		SELECT i.id, i.order_id, i.service_id, sv.name, i.product_id, p.name,
		       p.unit_cost, p.unit_price,
		       p.unit_cost * i.quantity  AS total_cost,
		       p.unit_price * i.quantity AS total_price,
		       i.quantity
		FROM order_items i
		JOIN products p  ON p.id  = i.product_id
		JOIN services sv ON sv.id = i.service_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []OrderItemDetail
	for rows.Next() {
		var it OrderItemDetail
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ServiceID, &it.ServiceName, &it.ProductID, &it.ProductName,
			&it.UnitCost, &it.UnitPrice, &it.TotalCost, &it.TotalPrice, &it.Quantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order item row iteration error: %w", err)
	}
	return items, nil
}

// ── Mutations ────────────────────────────────────────────────────────────────

// validateInput runs every referential check before any write. Checks run in
// order: status, then per item quantity, service, and product-service pair.
func (s *orderService) validateInput(ctx context.Context, input CreateOrderInput) error {
	if len(input.Items) == 0 {
		return NewValidationError(msgNoItems)
	}

	statusExists, err := s.statuses.Exists(ctx, input.StatusID)
	if err != nil {
		return err
	}
	if !statusExists {
		return NewValidationError(msgBadStatus)
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return NewValidationError(msgBadQuantity)
		}

		serviceExists, err := s.catalog.ServiceExists(ctx, item.ServiceID)
		if err != nil {
			return err
		}
		if !serviceExists {
			return NewValidationError(msgBadService)
		}

		productExists, err := s.catalog.ProductExistsForService(ctx, item.ProductID, item.ServiceID)
		if err != nil {
			return err
		}
		if !productExists {
			return NewValidationError(msgBadProduct)
		}
	}
	return nil
}

func (s *orderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDetail, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	orderID := uuid.New()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, reseller_id, customer_id, status_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, orderID, input.ResellerID, input.CustomerID, input.StatusID, input.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for i, item := range input.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, service_id, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.New(), orderID, item.ProductID, item.ServiceID, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order creation: %w", err)
	}

	return s.GetOrderByID(ctx, orderID)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID, statusID uuid.UUID) (bool, error) {
	statusExists, err := s.statuses.Exists(ctx, statusID)
	if err != nil {
		return false, err
	}
	if !statusExists {
		return false, NewValidationError(msgBadStatus)
	}

	tag, err := s.pool.Exec(ctx,
		"UPDATE orders SET status_id = $1 WHERE id = $2", statusID, orderID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update order %s status: %w", orderID, err)
	}
	return tag.RowsAffected() > 0, nil
}
