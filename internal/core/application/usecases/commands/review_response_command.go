package commands

import (
	"errors"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/guard"
)

var ErrReviewResponseCommandIsNotConstructed = errors.New(
	"ReviewResponseCommand must be created via NewReviewResponseCommand constructor",
)

// ReviewResponseCommand represents an admin's verdict on a vendor response.
// Approving an accept or price_update response assigns the vendor to the
// order. For an approved price_update the order adopts updateOrderPrice when
// the admin supplied one, otherwise the vendor's proposed price.
type ReviewResponseCommand struct { //nolint:recvcheck //using for validation
	responseID       kernel.UUID
	approved         bool
	adminResponse    string
	updateOrderPrice *kernel.Price

	guard guard.ConstructorGuard
}

// NewReviewResponseCommand creates a command to review a vendor response.
// updateOrderPrice is the admin's optional replacement quote; nil means an
// approved counter-offer adopts the vendor's proposed price as-is.
func NewReviewResponseCommand(
	responseID kernel.UUID,
	approved bool,
	adminResponse string,
	updateOrderPrice *kernel.Price,
) (ReviewResponseCommand, error) {
	cmd := ReviewResponseCommand{
		approved:      approved,
		adminResponse: adminResponse,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setResponseID(responseID); err != nil {
		return ReviewResponseCommand{}, err
	}

	if updateOrderPrice != nil {
		if err := updateOrderPrice.Validate(); err != nil {
			return ReviewResponseCommand{}, err
		}
		price := *updateOrderPrice
		cmd.updateOrderPrice = &price
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewResponseCommand) Validate() error {
	return c.guard.Validate(ErrReviewResponseCommandIsNotConstructed)
}

// ResponseID returns the response under review.
func (c ReviewResponseCommand) ResponseID() kernel.UUID {
	return c.responseID
}

// Approved returns the admin's verdict.
func (c ReviewResponseCommand) Approved() bool {
	return c.approved
}

// AdminResponse returns the admin's optional note.
func (c ReviewResponseCommand) AdminResponse() string {
	return c.adminResponse
}

// UpdateOrderPrice returns the admin's explicit replacement quote, or nil
// when the vendor's proposed price should be adopted.
func (c ReviewResponseCommand) UpdateOrderPrice() *kernel.Price {
	return c.updateOrderPrice
}

func (c *ReviewResponseCommand) setResponseID(responseID kernel.UUID) error {
	if err := responseID.Validate(); err != nil {
		return err
	}

	c.responseID = responseID
	return nil
}
