package ports

import (
	"context"
	"time"

	"relomarket/internal/core/domain/model/broadcast"
	"relomarket/internal/core/domain/model/kernel"
)

// BroadcastRepository defines the persistence contract for broadcasts.
type BroadcastRepository interface {
	// Add persists a new broadcast. The (order, vendor) pair is unique:
	// inserting a duplicate returns broadcast.ErrDuplicateBroadcast so the
	// fan-out can skip vendors already notified.
	Add(ctx context.Context, aggregate *broadcast.Broadcast) error

	// Update persists changes to an existing broadcast.
	Update(ctx context.Context, aggregate *broadcast.Broadcast) error

	// Get retrieves a broadcast by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*broadcast.Broadcast, error)

	// GetAllForOrder retrieves all broadcasts sent for an order, most recent
	// first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*broadcast.Broadcast, error)

	// ExpireAllPending closes every pending broadcast whose response window
	// ended before now. Returns how many broadcasts were expired.
	ExpireAllPending(ctx context.Context, now time.Time) (int64, error)
}
