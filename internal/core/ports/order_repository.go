// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Assign persists a vendor assignment with a conditional update: the
	// stored row's assigned vendor must still be empty or already equal the
	// aggregate's vendor. When another assignment won in the meantime the
	// update touches no rows and Assign returns order.ErrAlreadyAssigned,
	// letting the surrounding transaction roll back.
	Assign(ctx context.Context, aggregate *order.Order) error
}
