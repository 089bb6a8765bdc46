package commands

import (
	"context"

	"relomarket/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies admin edits to an order. Price updates
// land before status transitions so a quote-and-broadcast edit works in one
// call.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit and returns the updated order.
// Status transitions are checked against the order state machine.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, command UpdateOrderCommand) (*order.Order, error) {
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

	anOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if command.ApproxPrice() != nil {
		if err = anOrder.SetApproxPrice(*command.ApproxPrice()); err != nil {
			return nil, err
		}
	}

	if command.Status() != nil {
		if err = anOrder.ChangeStatus(*command.Status()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, anOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return anOrder, nil
}
