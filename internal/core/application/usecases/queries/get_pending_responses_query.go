package queries

import (
	"errors"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/guard"
)

var ErrGetPendingResponsesQueryIsNotConstructed = errors.New(
	"GetPendingResponsesQuery must be created via NewGetPendingResponsesQuery constructor",
)

// GetPendingResponsesQuery retrieves the admin review queue: every vendor
// response that has not received a verdict yet, across all orders.
type GetPendingResponsesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingResponsesQuery creates a query for the review queue.
// This is a parameterless query.
func NewGetPendingResponsesQuery() GetPendingResponsesQuery {
	return GetPendingResponsesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingResponsesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingResponsesQueryIsNotConstructed)
}

// PendingResponseView is the read model for one review queue entry.
// OrderID and ServiceType situate the response without another lookup.
type PendingResponseView struct {
	ResponseView
	OrderID     kernel.UUID
	ServiceType string
}
