package commands

import (
	"errors"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/response"
	"relomarket/internal/pkg/guard"
)

var ErrRecordResponseCommandIsNotConstructed = errors.New(
	"RecordResponseCommand must be created via NewRecordResponseCommand constructor",
)

// RecordResponseCommand represents a vendor's reply to a broadcast: an
// acceptance, a rejection, or a price counter-offer.
type RecordResponseCommand struct { //nolint:recvcheck //using for validation
	broadcastID   kernel.UUID
	vendorID      kernel.UUID
	responseType  response.Type
	proposedPrice *kernel.Price
	message       string

	guard guard.ConstructorGuard
}

// NewRecordResponseCommand creates a command to record a vendor response.
// proposedPrice is required for price_update replies and must be nil for
// accept and reject; that rule is enforced when the response is built.
func NewRecordResponseCommand(
	broadcastID kernel.UUID,
	vendorID kernel.UUID,
	responseType response.Type,
	proposedPrice *kernel.Price,
	message string,
) (RecordResponseCommand, error) {
	cmd := RecordResponseCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBroadcastID(broadcastID),
		cmd.setVendorID(vendorID),
		responseType.Validate(),
	); err != nil {
		return RecordResponseCommand{}, err
	}
	cmd.responseType = responseType

	if proposedPrice != nil {
		if err := proposedPrice.Validate(); err != nil {
			return RecordResponseCommand{}, err
		}
		price := *proposedPrice
		cmd.proposedPrice = &price
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordResponseCommand) Validate() error {
	return c.guard.Validate(ErrRecordResponseCommandIsNotConstructed)
}

// BroadcastID returns the broadcast being answered.
func (c RecordResponseCommand) BroadcastID() kernel.UUID {
	return c.broadcastID
}

// VendorID returns the replying vendor's ID.
func (c RecordResponseCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// ResponseType returns the classification of the reply.
func (c RecordResponseCommand) ResponseType() response.Type {
	return c.responseType
}

// ProposedPrice returns the vendor's counter-offer, or nil.
func (c RecordResponseCommand) ProposedPrice() *kernel.Price {
	return c.proposedPrice
}

// Message returns the vendor's optional note.
func (c RecordResponseCommand) Message() string {
	return c.message
}

func (c *RecordResponseCommand) setBroadcastID(broadcastID kernel.UUID) error {
	if err := broadcastID.Validate(); err != nil {
		return err
	}

	c.broadcastID = broadcastID
	return nil
}

func (c *RecordResponseCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
