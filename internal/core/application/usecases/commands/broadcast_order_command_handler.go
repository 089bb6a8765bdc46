package commands

import (
	"context"
	"errors"
	"time"

	"relomarket/internal/core/domain/model/broadcast"
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/services"
	"relomarket/internal/core/ports"
)

// BroadcastOrderCommandHandler orchestrates the fan-out of an order to
// vendors. It marks the order broadcasted, selects recipients by rating, and
// writes one broadcast per vendor, skipping vendors already notified by an
// earlier fan-out of the same order.
type BroadcastOrderCommandHandler struct {
	uowFactory BroadcastUoWFactory
}

// NewBroadcastOrderCommandHandler creates a handler for broadcast operations.
func NewBroadcastOrderCommandHandler(uowFactory BroadcastUoWFactory) BroadcastOrderCommandHandler {
	return BroadcastOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the broadcast command and returns how many new broadcasts
// were created. Re-broadcasting is idempotent per vendor: duplicates are
// skipped without failing the fan-out, and skipped vendors do not count.
//
// Fails with order.ErrPriceRequired when the order has no quote,
// order.ErrAlreadyAssigned when a vendor is already confirmed, and
// errs.ErrObjectNotFound when the order does not exist.
func (h BroadcastOrderCommandHandler) Handle(ctx context.Context, command BroadcastOrderCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	vendorRepo := uow.VendorRepository()
	broadcastRepo := uow.BroadcastRepository()

	anOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return 0, err
	}

	if err = anOrder.MarkBroadcasted(); err != nil {
		return 0, err
	}

	candidates, err := vendorRepo.GetAllMatching(ctx, ports.VendorFilters{
		City:         command.City(),
		MinRating:    command.MinRating(),
		OnlineOnly:   command.OnlineOnly(),
		ApprovedOnly: command.ApprovedOnly(),
	})
	if err != nil {
		return 0, err
	}

	recipients, err := services.NewRecipientSelector().Select(candidates, command.MaxVendors())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	count := 0
	for _, recipient := range recipients {
		b, err := broadcast.NewBroadcast(kernel.NewUUID(), anOrder.ID(), recipient.ID(), now)
		if err != nil {
			return 0, err
		}

		err = broadcastRepo.Add(ctx, b)
		if errors.Is(err, broadcast.ErrDuplicateBroadcast) {
			continue
		}
		if err != nil {
			return 0, err
		}
		count++
	}

	if err = orderRepo.Update(ctx, anOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
