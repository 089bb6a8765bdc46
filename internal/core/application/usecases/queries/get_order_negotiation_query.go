// Package queries contains read-only operations over the marketplace data.
// Query handlers bypass the domain aggregates and read persisted rows
// directly, returning flat view models for the admin dashboard.
package queries

import (
	"errors"
	"time"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/guard"
)

var ErrGetOrderNegotiationQueryIsNotConstructed = errors.New(
	"GetOrderNegotiationQuery must be created via NewGetOrderNegotiationQuery constructor",
)

// GetOrderNegotiationQuery retrieves the full negotiation picture for one
// order: every broadcast sent and every vendor response recorded.
type GetOrderNegotiationQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderNegotiationQuery creates a query for an order's negotiation
// history.
func NewGetOrderNegotiationQuery(orderID kernel.UUID) (GetOrderNegotiationQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderNegotiationQuery{}, err
	}

	return GetOrderNegotiationQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderNegotiationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderNegotiationQueryIsNotConstructed)
}

// OrderID returns the order whose negotiation is requested.
func (q GetOrderNegotiationQuery) OrderID() kernel.UUID {
	return q.orderID
}

// BroadcastView is the read model for one broadcast row.
type BroadcastView struct {
	ID          kernel.UUID
	VendorID    kernel.UUID
	VendorName  string
	Status      string
	BroadcastAt time.Time
	ExpiresAt   time.Time
	ResponseAt  *time.Time
}

// ResponseView is the read model for one vendor response row.
type ResponseView struct {
	ID            kernel.UUID
	BroadcastID   kernel.UUID
	VendorID      kernel.UUID
	VendorName    string
	ResponseType  string
	ProposedPrice *int64
	OriginalPrice *int64
	Message       string
	SubmittedAt   time.Time
	AdminApproved *bool
	AdminResponse string
	ReviewedAt    *time.Time
}

// GetOrderNegotiationQueryResponse bundles an order's broadcasts and
// responses.
type GetOrderNegotiationQueryResponse struct {
	Broadcasts []BroadcastView
	Responses  []ResponseView
}
