package commands

import (
	"context"
	"fmt"

	"relomarket/internal/core/domain/model/order"
	"relomarket/internal/core/domain/model/vendor"
	"relomarket/internal/pkg/errs"
)

// DirectAssignCommandHandler assigns a vendor to an order without a
// broadcast round-trip. It shares the single-assignment enforcement with the
// review flow: the same domain operation and the same conditional update,
// so a direct assignment racing a response approval has exactly one winner.
type DirectAssignCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewDirectAssignCommandHandler creates a handler for direct assignments.
func NewDirectAssignCommandHandler(uowFactory AssignUoWFactory) DirectAssignCommandHandler {
	return DirectAssignCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the vendor and returns the confirmed order.
//
// The vendor must exist and be approved. Fails with order.ErrPriceRequired
// when the order has no quote and order.ErrAlreadyAssigned when a different
// vendor already holds the order.
func (h DirectAssignCommandHandler) Handle(ctx context.Context, command DirectAssignCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	vendorRepo := uow.VendorRepository()

	anOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	aVendor, err := vendorRepo.Get(ctx, command.VendorID())
	if err != nil {
		return nil, err
	}

	if aVendor.ApprovalStatus() != vendor.Approved {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"vendorId",
			fmt.Errorf("vendor %s is %s, only approved vendors can be assigned", aVendor.ID(), aVendor.ApprovalStatus()),
		)
	}

	if err = anOrder.AssignVendor(aVendor.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Assign(ctx, anOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return anOrder, nil
}
