package commands

import (
	"errors"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/order"
	"relomarket/internal/pkg/errs"
	"relomarket/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents an admin edit of an order: a status
// transition, a new price quote, or both. At least one field must be set.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	status      *order.Status
	approxPrice *kernel.Price

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order.
// Nil status or price means the respective field stays untouched.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	status *order.Status,
	approxPrice *kernel.Price,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	if status == nil && approxPrice == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("status or approxPrice")
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
		s := *status
		cmd.status = &s
	}

	if approxPrice != nil {
		if err := approxPrice.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
		price := *approxPrice
		cmd.approxPrice = &price
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status transition, or nil.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// ApproxPrice returns the new quote, or nil.
func (c UpdateOrderCommand) ApproxPrice() *kernel.Price {
	return c.approxPrice
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
