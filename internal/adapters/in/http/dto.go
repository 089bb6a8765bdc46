package http

import (
	"time"

	"relomarket/internal/core/application/usecases/queries"
	"relomarket/internal/core/domain/model/order"
)

// ErrorResponse is the uniform JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BroadcastOrderRequest carries the fan-out filters for POST /orders/:id/broadcast.
type BroadcastOrderRequest struct {
	City         string  `json:"city"`
	MinRating    float64 `json:"minRating" validate:"gte=0,lte=5"`
	OnlineOnly   bool    `json:"onlineOnly"`
	ApprovedOnly bool    `json:"approvedOnly"`
	MaxVendors   int     `json:"maxVendors" validate:"required,gte=1,lte=100"`
}

// BroadcastOrderResponse reports how many vendors received the offer.
type BroadcastOrderResponse struct {
	BroadcastCount int `json:"broadcastCount"`
}

// DirectAssignRequest carries the vendor for POST /orders/:id/direct-assign.
type DirectAssignRequest struct {
	VendorID string `json:"vendorId" validate:"required,uuid"`
}

// UpdateOrderRequest carries the editable order fields for PUT /orders/:id.
// At least one of status and approxPrice must be present.
type UpdateOrderRequest struct {
	Status      *string `json:"status"`
	ApproxPrice *int64  `json:"approxPrice" validate:"omitempty,gt=0"`
}

// RecordResponseRequest carries a vendor's reply for POST /broadcasts/:id/respond.
type RecordResponseRequest struct {
	VendorID      string `json:"vendorId" validate:"required,uuid"`
	ResponseType  string `json:"responseType" validate:"required,oneof=accept reject price_update"`
	ProposedPrice *int64 `json:"proposedPrice" validate:"omitempty,gt=0"`
	Message       string `json:"message"`
}

// ReviewResponseRequest carries the admin verdict for POST /vendor-responses/:id/review.
// UpdateOrderPrice overrides the quote adopted when approving a counter-offer;
// when absent the vendor's proposed price is used.
type ReviewResponseRequest struct {
	Approved         *bool  `json:"approved" validate:"required"`
	AdminResponse    string `json:"adminResponse"`
	UpdateOrderPrice *int64 `json:"updateOrderPrice" validate:"omitempty,gt=0"`
}

// ReviewResponseResponse reports the review outcome.
type ReviewResponseResponse struct {
	Approved       bool   `json:"approved"`
	ResponseType   string `json:"responseType"`
	VendorAssigned bool   `json:"vendorAssigned"`
}

// OrderResponse is the JSON shape of an order aggregate.
type OrderResponse struct {
	ID               string  `json:"id"`
	ServiceType      string  `json:"serviceType"`
	ApproxPrice      *int64  `json:"approxPrice"`
	AssignedVendorID *string `json:"assignedVendorId"`
	Status           string  `json:"status"`
}

// VendorResponseView is the JSON shape of one recorded vendor reply.
type VendorResponseView struct {
	ID            string     `json:"id"`
	BroadcastID   string     `json:"broadcastId"`
	VendorID      string     `json:"vendorId"`
	VendorName    string     `json:"vendorName"`
	ResponseType  string     `json:"responseType"`
	ProposedPrice *int64     `json:"proposedPrice"`
	OriginalPrice *int64     `json:"originalPrice"`
	Message       string     `json:"message"`
	SubmittedAt   time.Time  `json:"submittedAt"`
	AdminApproved *bool      `json:"adminApproved"`
	AdminResponse string     `json:"adminResponse"`
	ReviewedAt    *time.Time `json:"reviewedAt"`
}

// BroadcastView is the JSON shape of one broadcast row.
type BroadcastView struct {
	ID          string     `json:"id"`
	VendorID    string     `json:"vendorId"`
	VendorName  string     `json:"vendorName"`
	Status      string     `json:"status"`
	BroadcastAt time.Time  `json:"broadcastAt"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	ResponseAt  *time.Time `json:"responseAt"`
}

// OrderNegotiationResponse is the negotiation history of one order.
type OrderNegotiationResponse struct {
	Broadcasts []BroadcastView      `json:"broadcasts"`
	Responses  []VendorResponseView `json:"responses"`
}

// PendingResponseView is one entry of the admin review queue.
type PendingResponseView struct {
	VendorResponseView
	OrderID     string `json:"orderId"`
	ServiceType string `json:"serviceType"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	var approxPrice *int64
	if price := aggregate.ApproxPrice(); price != nil {
		amount := price.Amount()
		approxPrice = &amount
	}

	var vendorID *string
	if id := aggregate.AssignedVendor(); id != nil {
		s := id.String()
		vendorID = &s
	}

	return OrderResponse{
		ID:               aggregate.ID().String(),
		ServiceType:      aggregate.ServiceType(),
		ApproxPrice:      approxPrice,
		AssignedVendorID: vendorID,
		Status:           aggregate.Status().String(),
	}
}

func toBroadcastView(view queries.BroadcastView) BroadcastView {
	return BroadcastView{
		ID:          view.ID.String(),
		VendorID:    view.VendorID.String(),
		VendorName:  view.VendorName,
		Status:      view.Status,
		BroadcastAt: view.BroadcastAt,
		ExpiresAt:   view.ExpiresAt,
		ResponseAt:  view.ResponseAt,
	}
}

func toVendorResponseView(view queries.ResponseView) VendorResponseView {
	return VendorResponseView{
		ID:            view.ID.String(),
		BroadcastID:   view.BroadcastID.String(),
		VendorID:      view.VendorID.String(),
		VendorName:    view.VendorName,
		ResponseType:  view.ResponseType,
		ProposedPrice: view.ProposedPrice,
		OriginalPrice: view.OriginalPrice,
		Message:       view.Message,
		SubmittedAt:   view.SubmittedAt,
		AdminApproved: view.AdminApproved,
		AdminResponse: view.AdminResponse,
		ReviewedAt:    view.ReviewedAt,
	}
}
