package commands

import (
	"errors"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/errs"
	"relomarket/internal/pkg/guard"
)

var ErrBroadcastOrderCommandIsNotConstructed = errors.New(
	"BroadcastOrderCommand must be created via NewBroadcastOrderCommand constructor",
)

// maxBroadcastFanOut caps the maxVendors parameter of a broadcast request.
const maxBroadcastFanOut = 100

// BroadcastOrderCommand represents a request to fan an order out to matching
// vendors. The filters narrow the candidate pool; maxVendors caps how many
// of the highest-rated eligible vendors receive the offer.
type BroadcastOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	city         string
	minRating    float64
	onlineOnly   bool
	approvedOnly bool
	maxVendors   int

	guard guard.ConstructorGuard
}

// NewBroadcastOrderCommand creates a command to broadcast an order.
// City and minRating are optional filters; zero values mean no restriction.
func NewBroadcastOrderCommand(
	orderID kernel.UUID,
	city string,
	minRating float64,
	onlineOnly bool,
	approvedOnly bool,
	maxVendors int,
) (BroadcastOrderCommand, error) {
	cmd := BroadcastOrderCommand{
		city:         city,
		onlineOnly:   onlineOnly,
		approvedOnly: approvedOnly,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMinRating(minRating),
		cmd.setMaxVendors(maxVendors),
	); err != nil {
		return BroadcastOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BroadcastOrderCommand) Validate() error {
	return c.guard.Validate(ErrBroadcastOrderCommandIsNotConstructed)
}

// OrderID returns the order to broadcast.
func (c BroadcastOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// City returns the optional city filter.
func (c BroadcastOrderCommand) City() string {
	return c.city
}

// MinRating returns the optional minimum rating filter.
func (c BroadcastOrderCommand) MinRating() float64 {
	return c.minRating
}

// OnlineOnly reports whether only online vendors are considered.
func (c BroadcastOrderCommand) OnlineOnly() bool {
	return c.onlineOnly
}

// ApprovedOnly reports whether only approved vendors are considered.
func (c BroadcastOrderCommand) ApprovedOnly() bool {
	return c.approvedOnly
}

// MaxVendors returns the fan-out cap.
func (c BroadcastOrderCommand) MaxVendors() int {
	return c.maxVendors
}

func (c *BroadcastOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *BroadcastOrderCommand) setMinRating(minRating float64) error {
	if minRating < 0 || minRating > 5 {
		return errs.NewValueIsOutOfRangeError("minRating", minRating, 0, 5)
	}

	c.minRating = minRating
	return nil
}

func (c *BroadcastOrderCommand) setMaxVendors(maxVendors int) error {
	if maxVendors < 1 || maxVendors > maxBroadcastFanOut {
		return errs.NewValueIsOutOfRangeError("maxVendors", maxVendors, 1, maxBroadcastFanOut)
	}

	c.maxVendors = maxVendors
	return nil
}
