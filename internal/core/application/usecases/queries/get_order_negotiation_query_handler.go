package queries

import (
	"context"

	"relomarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderNegotiationQueryHandler reads an order's negotiation history with
// direct SQL, joining vendor names in so the dashboard renders without extra
// lookups.
type GetOrderNegotiationQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderNegotiationQueryHandler creates a handler for negotiation
// history queries.
func NewGetOrderNegotiationQueryHandler(db *gorm.DB) GetOrderNegotiationQueryHandler {
	return GetOrderNegotiationQueryHandler{db: db}
}

// Handle returns the order's broadcasts and responses, each newest first.
// An order with no negotiation yields empty slices, not an error.
func (h GetOrderNegotiationQueryHandler) Handle(
	ctx context.Context,
	query GetOrderNegotiationQuery,
) (GetOrderNegotiationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderNegotiationQueryResponse{}, err
	}

	broadcasts, err := h.loadBroadcasts(ctx, query.OrderID())
	if err != nil {
		return GetOrderNegotiationQueryResponse{}, err
	}

	responses, err := h.loadResponses(ctx, query.OrderID())
	if err != nil {
		return GetOrderNegotiationQueryResponse{}, err
	}

	return GetOrderNegotiationQueryResponse{
		Broadcasts: broadcasts,
		Responses:  responses,
	}, nil
}

func (h GetOrderNegotiationQueryHandler) loadBroadcasts(
	ctx context.Context, orderID kernel.UUID,
) ([]BroadcastView, error) {
	broadcasts := make([]BroadcastView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.vendor_id,
			v.name,
			b.status,
			b.broadcast_at,
			b.expires_at,
			b.response_at
		FROM order_broadcasts b
		JOIN vendors v ON v.id = b.vendor_id
		WHERE b.order_id = ?
		ORDER BY b.broadcast_at DESC, b.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view BroadcastView
		var id, vendorID uuid.UUID

		err = rows.Scan(
			&id,
			&vendorID,
			&view.VendorName,
			&view.Status,
			&view.BroadcastAt,
			&view.ExpiresAt,
			&view.ResponseAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}

		broadcasts = append(broadcasts, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return broadcasts, nil
}

func (h GetOrderNegotiationQueryHandler) loadResponses(
	ctx context.Context, orderID kernel.UUID,
) ([]ResponseView, error) {
	responses := make([]ResponseView, 0)

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
			r.admin_approved,
			r.admin_response,
			r.reviewed_at
		FROM vendor_responses r
		JOIN vendors v ON v.id = r.vendor_id
		WHERE r.order_id = ?
		ORDER BY r.submitted_at DESC, r.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view ResponseView
		var id, broadcastID, vendorID uuid.UUID

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
			&view.AdminApproved,
			&view.AdminResponse,
			&view.ReviewedAt,
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

		responses = append(responses, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
