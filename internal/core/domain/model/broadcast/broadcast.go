package broadcast

import (
	"errors"
	"fmt"
	"time"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/errs"
	"relomarket/internal/pkg/guard"
)

// ResponseWindow is how long a vendor has to react to a broadcast before it
// is eligible for expiry.
const ResponseWindow = 24 * time.Hour

// Domain errors for broadcast operations.
var (
	// ErrBroadcastIsNotConstructed is returned when using an improperly
	// initialized Broadcast.
	ErrBroadcastIsNotConstructed = errors.New("Broadcast must be created via NewBroadcast constructor")

	// ErrDuplicateBroadcast is returned when storing a broadcast for an
	// (order, vendor) pair that already has one.
	ErrDuplicateBroadcast = errors.New("vendor was already broadcast this order")
)

// Broadcast represents one order offer delivered to one vendor during
// fan-out. The (order, vendor) pair is unique: re-broadcasting an order
// never produces a second row for a vendor already notified.
//
// A broadcast stays pending until the vendor accepts or rejects it, or the
// expiry sweep closes it after the response window. A vendor's late reaction
// is still recorded against the ledger, but an expired broadcast can no
// longer lead to an assignment.
type Broadcast struct {
	// id uniquely identifies the broadcast
	id kernel.UUID
	// orderID is the order offered to the vendor
	orderID kernel.UUID
	// vendorID is the vendor the order was offered to
	vendorID kernel.UUID
	// status tracks the vendor's reaction
	status Status
	// broadcastAt is when the offer was sent
	broadcastAt time.Time
	// expiresAt is when the response window closes
	expiresAt time.Time
	// responseAt is when the vendor reacted, empty until then
	responseAt *time.Time
	// guard ensures the broadcast was properly constructed
	guard guard.ConstructorGuard
}

// NewBroadcast creates a pending Broadcast for the given order and vendor.
// The response window opens at broadcastAt and closes ResponseWindow later.
func NewBroadcast(id kernel.UUID, orderID kernel.UUID, vendorID kernel.UUID, broadcastAt time.Time) (*Broadcast, error) {
	b := &Broadcast{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setVendorID(vendorID),
		b.setBroadcastAt(broadcastAt),
	); err != nil {
		return nil, err
	}

	b.expiresAt = b.broadcastAt.Add(ResponseWindow)
	return b, nil
}

// RestoreBroadcast reconstructs a Broadcast from persistent storage.
func RestoreBroadcast(
	id kernel.UUID,
	orderID kernel.UUID,
	vendorID kernel.UUID,
	status Status,
	broadcastAt time.Time,
	expiresAt time.Time,
	responseAt *time.Time,
) (*Broadcast, error) {
	b := &Broadcast{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setVendorID(vendorID),
		status.Validate(),
		b.setBroadcastAt(broadcastAt),
	); err != nil {
		return nil, err
	}

	if expiresAt.Before(broadcastAt) {
		return nil, errs.NewValueIsInvalidError("expiresAt")
	}

	b.status = status
	b.expiresAt = expiresAt

	if responseAt != nil {
		at := *responseAt
		b.responseAt = &at
	}

	return b, nil
}

// Validate checks if the Broadcast was properly constructed.
func (b *Broadcast) Validate() error {
	if b == nil {
		return ErrBroadcastIsNotConstructed
	}
	return b.guard.Validate(ErrBroadcastIsNotConstructed)
}

// IsEqual compares two broadcasts by their unique identifiers.
func (b *Broadcast) IsEqual(other *Broadcast) bool {
	if other == nil {
		return false
	}
	return b.id.IsEqual(other.id)
}

// ID returns the unique identifier of the broadcast.
func (b *Broadcast) ID() kernel.UUID {
	return b.id
}

// OrderID returns the ID of the offered order.
func (b *Broadcast) OrderID() kernel.UUID {
	return b.orderID
}

// VendorID returns the ID of the vendor the order was offered to.
func (b *Broadcast) VendorID() kernel.UUID {
	return b.vendorID
}

// Status returns the vendor's current reaction state.
func (b *Broadcast) Status() Status {
	return b.status
}

// BroadcastAt returns when the offer was sent.
func (b *Broadcast) BroadcastAt() time.Time {
	return b.broadcastAt
}

// ExpiresAt returns when the response window closes.
func (b *Broadcast) ExpiresAt() time.Time {
	return b.expiresAt
}

// ResponseAt returns when the vendor reacted, or nil for a broadcast the
// vendor never answered.
func (b *Broadcast) ResponseAt() *time.Time {
	return b.responseAt
}

// IsExpired reports whether the response window has closed at the given
// moment, regardless of the recorded status.
func (b *Broadcast) IsExpired(now time.Time) bool {
	return now.After(b.expiresAt)
}

// IsActionable reports whether an accepted response on this broadcast may
// still lead to an assignment: the window must be open and the sweep must
// not have closed it.
func (b *Broadcast) IsActionable(now time.Time) bool {
	return b.status != StatusExpired && !b.IsExpired(now)
}

// Accept records that the vendor accepted the offer at respondedAt.
// Only a pending broadcast can be accepted.
func (b *Broadcast) Accept(respondedAt time.Time) error {
	return b.react(StatusAccepted, respondedAt)
}

// Reject records that the vendor declined the offer at respondedAt.
// Only a pending broadcast can be rejected.
func (b *Broadcast) Reject(respondedAt time.Time) error {
	return b.react(StatusRejected, respondedAt)
}

// Expire closes the response window without a reaction; responseAt stays
// empty. Only a pending broadcast can expire.
func (b *Broadcast) Expire() error {
	if err := b.ensurePending(StatusExpired); err != nil {
		return err
	}

	b.status = StatusExpired
	return nil
}

// react moves a pending broadcast to the vendor's reaction state and stamps
// the reaction time.
func (b *Broadcast) react(target Status, respondedAt time.Time) error {
	if respondedAt.IsZero() {
		return errs.NewValueIsRequiredError("respondedAt")
	}

	if err := b.ensurePending(target); err != nil {
		return err
	}

	b.status = target
	b.responseAt = &respondedAt
	return nil
}

func (b *Broadcast) ensurePending(target Status) error {
	if b.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("broadcast in status %s cannot become %s", b.status, target),
		)
	}

	return nil
}

// setID sets the broadcast's unique identifier with validation.
func (b *Broadcast) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

// setOrderID sets the offered order's identifier with validation.
func (b *Broadcast) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	b.orderID = orderID
	return nil
}

// setVendorID sets the target vendor's identifier with validation.
func (b *Broadcast) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	b.vendorID = vendorID
	return nil
}

// setBroadcastAt sets the send time with validation.
func (b *Broadcast) setBroadcastAt(broadcastAt time.Time) error {
	if broadcastAt.IsZero() {
		return errs.NewValueIsRequiredError("broadcastAt")
	}

	b.broadcastAt = broadcastAt
	return nil
}
