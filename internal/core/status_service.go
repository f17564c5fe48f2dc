package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatusService answers existence queries against the status lookup table.
type StatusService interface {
	// Exists reports whether a status with the given ID exists.
	Exists(ctx context.Context, statusID uuid.UUID) (bool, error)
}

type statusService struct {
	pool *pgxpool.Pool
}

// NewStatusService constructs a StatusService backed by the given pool.
func NewStatusService(pool *pgxpool.Pool) StatusService {
	return &statusService{pool: pool}
}

func (s *statusService) Exists(ctx context.Context, statusID uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM statuses WHERE id = $1)", statusID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check status %s: %w", statusID, err)
	}
	return exists, nil
}

