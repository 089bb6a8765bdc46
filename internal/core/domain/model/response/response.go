package response

import (
	"errors"
	"time"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/errs"
	"relomarket/internal/pkg/guard"
)

// Domain errors for vendor response operations.
var (
	// ErrResponseIsNotConstructed is returned when using an improperly
	// initialized VendorResponse.
	ErrResponseIsNotConstructed = errors.New("VendorResponse must be created via NewVendorResponse constructor")

	// ErrAlreadyReviewed is returned when a response is reviewed a second time.
	ErrAlreadyReviewed = errors.New("vendor response has already been reviewed")
)

// VendorResponse represents a vendor's reply to a broadcast. Responses form
// an append-only ledger: nothing about the reply itself changes after
// submission, the admin review only adds a verdict on top.
//
// Business rules:
//   - A price_update must carry a proposed price; accept and reject must not
//   - originalPrice snapshots the order's quoted price at submission time
//   - A response is reviewed at most once
type VendorResponse struct {
	// id uniquely identifies the response
	id kernel.UUID
	// broadcastID is the broadcast this reply answers
	broadcastID kernel.UUID
	// orderID is the order being negotiated
	orderID kernel.UUID
	// vendorID is the replying vendor
	vendorID kernel.UUID
	// responseType classifies the reply
	responseType Type
	// proposedPrice is the vendor's counter-offer, set for price_update only
	proposedPrice *kernel.Price
	// originalPrice is the order's quoted price at submission time
	originalPrice *kernel.Price
	// message is the vendor's optional free-text note
	message string
	// submittedAt is when the vendor replied
	submittedAt time.Time
	// adminApproved holds the review verdict, nil until reviewed
	adminApproved *bool
	// adminResponse is the admin's optional note attached during review
	adminResponse string
	// reviewedAt is when the review happened, nil until reviewed
	reviewedAt *time.Time
	// guard ensures the response was properly constructed
	guard guard.ConstructorGuard
}

// NewVendorResponse records a vendor's reply to a broadcast.
//
// Parameters:
//   - id: Unique identifier for the response
//   - broadcastID: The broadcast being answered
//   - orderID: The order being negotiated
//   - vendorID: The replying vendor
//   - responseType: accept, reject, or price_update
//   - proposedPrice: The counter-offer, required for price_update and
//     forbidden otherwise
//   - originalPrice: Snapshot of the order's quoted price, may be nil if the
//     order had no quote at submission time
//   - message: Optional free-text note
//   - submittedAt: Submission time (must be non-zero)
func NewVendorResponse(
	id kernel.UUID,
	broadcastID kernel.UUID,
	orderID kernel.UUID,
	vendorID kernel.UUID,
	responseType Type,
	proposedPrice *kernel.Price,
	originalPrice *kernel.Price,
	message string,
	submittedAt time.Time,
) (*VendorResponse, error) {
	r := &VendorResponse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setBroadcastID(broadcastID),
		r.setOrderID(orderID),
		r.setVendorID(vendorID),
		responseType.Validate(),
		r.setSubmittedAt(submittedAt),
	); err != nil {
		return nil, err
	}
	r.responseType = responseType

	if err := r.setProposedPrice(proposedPrice); err != nil {
		return nil, err
	}
	if err := r.setOriginalPrice(originalPrice); err != nil {
		return nil, err
	}

	r.message = message
	return r, nil
}

// RestoreVendorResponse reconstructs a VendorResponse from persistent
// storage, including any review verdict already attached.
func RestoreVendorResponse(
	id kernel.UUID,
	broadcastID kernel.UUID,
	orderID kernel.UUID,
	vendorID kernel.UUID,
	responseType Type,
	proposedPrice *kernel.Price,
	originalPrice *kernel.Price,
	message string,
	submittedAt time.Time,
	adminApproved *bool,
	adminResponse string,
	reviewedAt *time.Time,
) (*VendorResponse, error) {
	r, err := NewVendorResponse(
		id, broadcastID, orderID, vendorID,
		responseType, proposedPrice, originalPrice, message, submittedAt,
	)
	if err != nil {
		return nil, err
	}

	if adminApproved != nil {
		if reviewedAt == nil || reviewedAt.IsZero() {
			return nil, errs.NewValueIsRequiredError("reviewedAt")
		}
		approved := *adminApproved
		at := *reviewedAt
		r.adminApproved = &approved
		r.reviewedAt = &at
		r.adminResponse = adminResponse
	}

	return r, nil
}

// Validate checks if the VendorResponse was properly constructed.
func (r *VendorResponse) Validate() error {
	if r == nil {
		return ErrResponseIsNotConstructed
	}
	return r.guard.Validate(ErrResponseIsNotConstructed)
}

// IsEqual compares two responses by their unique identifiers.
func (r *VendorResponse) IsEqual(other *VendorResponse) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// ID returns the unique identifier of the response.
func (r *VendorResponse) ID() kernel.UUID {
	return r.id
}

// BroadcastID returns the broadcast this reply answers.
func (r *VendorResponse) BroadcastID() kernel.UUID {
	return r.broadcastID
}

// OrderID returns the order being negotiated.
func (r *VendorResponse) OrderID() kernel.UUID {
	return r.orderID
}

// VendorID returns the replying vendor's ID.
func (r *VendorResponse) VendorID() kernel.UUID {
	return r.vendorID
}

// ResponseType returns the classification of the reply.
func (r *VendorResponse) ResponseType() Type {
	return r.responseType
}

// ProposedPrice returns the vendor's counter-offer, or nil for accept/reject.
func (r *VendorResponse) ProposedPrice() *kernel.Price {
	return r.proposedPrice
}

// OriginalPrice returns the order's quoted price at submission time, or nil
// if the order had no quote.
func (r *VendorResponse) OriginalPrice() *kernel.Price {
	return r.originalPrice
}

// Message returns the vendor's free-text note.
func (r *VendorResponse) Message() string {
	return r.message
}

// SubmittedAt returns when the vendor replied.
func (r *VendorResponse) SubmittedAt() time.Time {
	return r.submittedAt
}

// AdminApproved returns the review verdict, or nil while unreviewed.
func (r *VendorResponse) AdminApproved() *bool {
	return r.adminApproved
}

// AdminResponse returns the admin's note attached during review.
func (r *VendorResponse) AdminResponse() string {
	return r.adminResponse
}

// ReviewedAt returns when the review happened, or nil while unreviewed.
func (r *VendorResponse) ReviewedAt() *time.Time {
	return r.reviewedAt
}

// IsReviewed reports whether an admin has already reviewed the response.
func (r *VendorResponse) IsReviewed() bool {
	return r.adminApproved != nil
}

// IsApproved reports whether the response was reviewed and approved.
func (r *VendorResponse) IsApproved() bool {
	return r.adminApproved != nil && *r.adminApproved
}

// LeadsToAssignment reports whether approving this response assigns the
// vendor to the order. Approved rejections are acknowledgements only.
func (r *VendorResponse) LeadsToAssignment() bool {
	return r.responseType == TypeAccept || r.responseType == TypePriceUpdate
}

// Review attaches the admin's verdict to the response. Both approval and
// rejection mark the response reviewed; a second review fails with
// ErrAlreadyReviewed.
func (r *VendorResponse) Review(approved bool, adminResponse string, reviewedAt time.Time) error {
	if r.IsReviewed() {
		return ErrAlreadyReviewed
	}
	if reviewedAt.IsZero() {
		return errs.NewValueIsRequiredError("reviewedAt")
	}

	r.adminApproved = &approved
	r.adminResponse = adminResponse
	r.reviewedAt = &reviewedAt
	return nil
}

// setID sets the response's unique identifier with validation.
func (r *VendorResponse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

// setBroadcastID sets the answered broadcast's identifier with validation.
func (r *VendorResponse) setBroadcastID(broadcastID kernel.UUID) error {
	if err := broadcastID.Validate(); err != nil {
		return err
	}

	r.broadcastID = broadcastID
	return nil
}

// setOrderID sets the negotiated order's identifier with validation.
func (r *VendorResponse) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	r.orderID = orderID
	return nil
}

// setVendorID sets the replying vendor's identifier with validation.
func (r *VendorResponse) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	r.vendorID = vendorID
	return nil
}

// setSubmittedAt sets the submission time with validation.
func (r *VendorResponse) setSubmittedAt(submittedAt time.Time) error {
	if submittedAt.IsZero() {
		return errs.NewValueIsRequiredError("submittedAt")
	}

	r.submittedAt = submittedAt
	return nil
}

// setProposedPrice enforces the proposed-price rule per response type.
func (r *VendorResponse) setProposedPrice(proposedPrice *kernel.Price) error {
	if r.responseType == TypePriceUpdate {
		if proposedPrice == nil {
			return errs.NewValueIsRequiredError("proposedPrice")
		}
	} else if proposedPrice != nil {
		return errs.NewValueIsInvalidError("proposedPrice is only allowed for price_update responses")
	}

	if proposedPrice != nil {
		if err := proposedPrice.Validate(); err != nil {
			return err
		}
		price := *proposedPrice
		r.proposedPrice = &price
	}

	return nil
}

// setOriginalPrice snapshots the order's quoted price with validation.
func (r *VendorResponse) setOriginalPrice(originalPrice *kernel.Price) error {
	if originalPrice == nil {
		return nil
	}

	if err := originalPrice.Validate(); err != nil {
		return err
	}
	price := *originalPrice
	r.originalPrice = &price
	return nil
}
