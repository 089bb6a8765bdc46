package commands

import (
	"context"
	"fmt"
	"time"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/response"
	"relomarket/internal/pkg/errs"
)

// ReviewResult reports the outcome of a response review.
type ReviewResult struct {
	// Approved is the verdict recorded on the response.
	Approved bool
	// ResponseType is the type of the reviewed response.
	ResponseType response.Type
	// VendorAssigned reports whether the review confirmed the vendor on the
	// order.
	VendorAssigned bool
}

// ReviewResponseCommandHandler applies an admin verdict to a vendor response.
//
// The whole review is one transaction: the reviewed-mark, the optional price
// adoption, and the vendor assignment commit together or not at all. When a
// concurrent review already assigned another vendor, the conditional
// assignment fails with order.ErrAlreadyAssigned and everything rolls back,
// leaving the response open for a later verdict.
type ReviewResponseCommandHandler struct {
	uowFactory NegotiationUoWFactory
}

// NewReviewResponseCommandHandler creates a handler for response reviews.
func NewReviewResponseCommandHandler(uowFactory NegotiationUoWFactory) ReviewResponseCommandHandler {
	return ReviewResponseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
//
// Both verdicts mark the response reviewed. Approving an accept or
// price_update response additionally assigns the vendor, provided the
// underlying broadcast's response window is still actionable; approving a
// late response fails validation. Re-reviewing fails with
// response.ErrAlreadyReviewed.
func (h ReviewResponseCommandHandler) Handle(ctx context.Context, command ReviewResponseCommand) (ReviewResult, error) {
	if err := command.Validate(); err != nil {
		return ReviewResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReviewResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	responseRepo := uow.ResponseRepository()

	vendorResponse, err := responseRepo.Get(ctx, command.ResponseID())
	if err != nil {
		return ReviewResult{}, err
	}

	now := time.Now().UTC()
	if err = vendorResponse.Review(command.Approved(), command.AdminResponse(), now); err != nil {
		return ReviewResult{}, err
	}

	result := ReviewResult{
		Approved:     command.Approved(),
		ResponseType: vendorResponse.ResponseType(),
	}

	if command.Approved() && vendorResponse.LeadsToAssignment() {
		if err = h.assignVendor(ctx, uow, vendorResponse, command.UpdateOrderPrice(), now); err != nil {
			return ReviewResult{}, err
		}
		result.VendorAssigned = true
	}

	if err = responseRepo.Update(ctx, vendorResponse); err != nil {
		return ReviewResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReviewResult{}, err
	}

	return result, nil
}

// assignVendor confirms the responding vendor on the order inside the review
// transaction. The repository's conditional update re-checks the
// single-assignment invariant against the stored row.
func (h ReviewResponseCommandHandler) assignVendor(
	ctx context.Context,
	uow NegotiationUoW,
	vendorResponse *response.VendorResponse,
	overridePrice *kernel.Price,
	now time.Time,
) error {
	broadcastRepo := uow.BroadcastRepository()
	orderRepo := uow.OrderRepository()

	b, err := broadcastRepo.Get(ctx, vendorResponse.BroadcastID())
	if err != nil {
		return err
	}

	if !b.IsActionable(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"responseId",
			fmt.Errorf("broadcast %s expired, a late response cannot be approved for assignment", b.ID()),
		)
	}

	anOrder, err := orderRepo.Get(ctx, vendorResponse.OrderID())
	if err != nil {
		return err
	}

	// Approving a counter-offer re-quotes the order: the admin's override
	// wins, otherwise the vendor's proposed price is adopted.
	if vendorResponse.ResponseType() == response.TypePriceUpdate {
		newPrice := vendorResponse.ProposedPrice()
		if overridePrice != nil {
			newPrice = overridePrice
		}
		if err = anOrder.SetApproxPrice(*newPrice); err != nil {
			return err
		}
	}

	if err = anOrder.AssignVendor(vendorResponse.VendorID()); err != nil {
		return err
	}

	return orderRepo.Assign(ctx, anOrder)
}
