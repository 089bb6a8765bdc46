package ports

import (
	"context"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/vendor"
)

// VendorFilters narrows the vendor pool queried for a broadcast fan-out.
// Zero values mean "no restriction" for the respective field.
type VendorFilters struct {
	// City restricts vendors to one operating city.
	City string
	// MinRating drops vendors rated below the threshold.
	MinRating float64
	// OnlineOnly keeps only vendors currently taking work.
	OnlineOnly bool
	// ApprovedOnly keeps only vendors that passed admin review.
	ApprovedOnly bool
}

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor aggregate to storage.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor aggregate.
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetAllMatching retrieves vendors matching the filters, ordered by
	// rating descending. Used to build the broadcast candidate pool.
	GetAllMatching(ctx context.Context, filters VendorFilters) ([]*vendor.Vendor, error)
}
