package commands

import (
	"context"
	"time"
)

// ExpireBroadcastsCommandHandler runs the expiry sweep: one bulk update that
// closes every pending broadcast past its response window. Expired
// broadcasts stay in the ledger; only their status changes.
type ExpireBroadcastsCommandHandler struct {
	uowFactory SweepUoWFactory
}

// NewExpireBroadcastsCommandHandler creates a handler for the expiry sweep.
func NewExpireBroadcastsCommandHandler(uowFactory SweepUoWFactory) ExpireBroadcastsCommandHandler {
	return ExpireBroadcastsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle closes all overdue pending broadcasts and returns how many were
// expired.
func (h ExpireBroadcastsCommandHandler) Handle(ctx context.Context, command ExpireBroadcastsCommand) (int64, error) {
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

	expired, err := uow.BroadcastRepository().ExpireAllPending(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
