package queries

import (
	"context"

	"relomarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingResponsesQueryHandler reads the admin review queue with direct
// SQL: unreviewed responses across all orders, oldest first so the queue is
// worked in arrival order.
type GetPendingResponsesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingResponsesQueryHandler creates a handler for review queue
// queries.
func NewGetPendingResponsesQueryHandler(db *gorm.DB) GetPendingResponsesQueryHandler {
	return GetPendingResponsesQueryHandler{db: db}
}

// Handle returns all unreviewed vendor responses ordered by submission time.
func (h GetPendingResponsesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingResponsesQuery,
) ([]PendingResponseView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]PendingResponseView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.broadcast_id,
			r.vendor_id,
			v.name,
			r.response_type,
			r.proposed_price,
			r.original_price,
			r.message,
			r.submitted_at,
			r.order_id,
			o.service_type
		FROM vendor_responses r
		JOIN vendors v ON v.id = r.vendor_id
		JOIN orders o ON o.id = r.order_id
		WHERE r.admin_approved IS NULL
		ORDER BY r.submitted_at, r.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view PendingResponseView
		var id, broadcastID, vendorID, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&broadcastID,
			&vendorID,
			&view.VendorName,
			&view.ResponseType,
			&view.ProposedPrice,
			&view.OriginalPrice,
			&view.Message,
			&view.SubmittedAt,
			&orderID,
			&view.ServiceType,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.BroadcastID, err = kernel.UUIDFromBytes(broadcastID[:]); err != nil {
			return nil, err
		}
		if view.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		pending = append(pending, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
