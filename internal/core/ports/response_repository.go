package ports

import (
	"context"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/response"
)

// ResponseRepository defines the persistence contract for vendor responses.
type ResponseRepository interface {
	// Add persists a new vendor response to the ledger.
	Add(ctx context.Context, aggregate *response.VendorResponse) error

	// Update persists changes to an existing response, typically the review
	// verdict.
	Update(ctx context.Context, aggregate *response.VendorResponse) error

	// Get retrieves a response by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*response.VendorResponse, error)

	// GetAllForOrder retrieves all responses recorded for an order, newest
	// first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*response.VendorResponse, error)
}
