package commands

import (
	"errors"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/guard"
)

var ErrDirectAssignCommandIsNotConstructed = errors.New(
	"DirectAssignCommand must be created via NewDirectAssignCommand constructor",
)

// DirectAssignCommand represents an admin assigning a vendor to an order
// without going through the broadcast flow.
type DirectAssignCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDirectAssignCommand creates a command to assign a vendor directly.
func NewDirectAssignCommand(orderID kernel.UUID, vendorID kernel.UUID) (DirectAssignCommand, error) {
	cmd := DirectAssignCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVendorID(vendorID),
	); err != nil {
		return DirectAssignCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DirectAssignCommand) Validate() error {
	return c.guard.Validate(ErrDirectAssignCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c DirectAssignCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the vendor being assigned.
func (c DirectAssignCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c *DirectAssignCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DirectAssignCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
