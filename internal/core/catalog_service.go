package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogService answers existence queries against the service and product
// lookup tables.
type CatalogService interface {
	// ServiceExists reports whether a service with the given ID exists.
	ServiceExists(ctx context.Context, serviceID uuid.UUID) (bool, error)

	// ProductExistsForService reports whether a product with the given ID
	// exists and belongs to the given service. A product that exists under a
	// different service does not satisfy the check.
	ProductExistsForService(ctx context.Context, productID, serviceID uuid.UUID) (bool, error)
}

type catalogService struct {
	pool *pgxpool.Pool
}

// NewCatalogService constructs a CatalogService backed by the given pool.
func NewCatalogService(pool *pgxpool.Pool) CatalogService {
	return &catalogService{pool: pool}
}

func (s *catalogService) ServiceExists(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM services WHERE id = $1)", serviceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check service %s: %w", serviceID, err)
	}
	return exists, nil
}

func (s *catalogService) ProductExistsForService(ctx context.Context, productID, serviceID uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM products WHERE id = $1 AND service_id = $2)",
		productID, serviceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product %s for service %s: %w", productID, serviceID, err)
	}
	return exists, nil
}
