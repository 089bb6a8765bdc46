package commands

import (
	"context"
	"fmt"
	"time"

	"relomarket/internal/core/domain/model/broadcast"
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/response"
	"relomarket/internal/pkg/errs"
)

// RecordResponseCommandHandler appends a vendor's reply to the negotiation
// ledger. The reply must come from the vendor the broadcast targeted; the
// broadcast's status is updated on first reaction, but the ledger itself is
// append-only and accepts late replies after the window closed.
type RecordResponseCommandHandler struct {
	uowFactory NegotiationUoWFactory
}

// NewRecordResponseCommandHandler creates a handler for recording vendor
// responses.
func NewRecordResponseCommandHandler(uowFactory NegotiationUoWFactory) RecordResponseCommandHandler {
	return RecordResponseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the vendor's response and returns it.
//
// The order's current quote is snapshotted into the response as the original
// price so the negotiation history stays meaningful after re-quotes. If the
// broadcast is still pending its status moves to accepted or rejected; a
// reply after expiry is recorded without touching the swept status.
func (h RecordResponseCommandHandler) Handle(
	ctx context.Context, command RecordResponseCommand,
) (*response.VendorResponse, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	broadcastRepo := uow.BroadcastRepository()
	orderRepo := uow.OrderRepository()
	responseRepo := uow.ResponseRepository()

	b, err := broadcastRepo.Get(ctx, command.BroadcastID())
	if err != nil {
		return nil, err
	}

	if !b.VendorID().IsEqual(command.VendorID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"vendorId",
			fmt.Errorf("broadcast %s was not sent to vendor %s", b.ID(), command.VendorID()),
		)
	}

	anOrder, err := orderRepo.Get(ctx, b.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	vendorResponse, err := response.NewVendorResponse(
		kernel.NewUUID(),
		b.ID(),
		b.OrderID(),
		command.VendorID(),
		command.ResponseType(),
		command.ProposedPrice(),
		anOrder.ApproxPrice(),
		command.Message(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if b.Status() == broadcast.StatusPending {
		if err = h.reactToBroadcast(b, command.ResponseType(), now); err != nil {
			return nil, err
		}
		if err = broadcastRepo.Update(ctx, b); err != nil {
			return nil, err
		}
	}

	if err = responseRepo.Add(ctx, vendorResponse); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return vendorResponse, nil
}

// reactToBroadcast maps the response type onto the broadcast's reaction,
// stamped with the submission time. A price counter-offer counts as an
// acceptance of the offer itself.
func (h RecordResponseCommandHandler) reactToBroadcast(
	b *broadcast.Broadcast, responseType response.Type, respondedAt time.Time,
) error {
	if responseType == response.TypeReject {
		return b.Reject(respondedAt)
	}
	return b.Accept(respondedAt)
}
