package order

import (
	"errors"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPriceRequired is returned when a broadcast or assignment is attempted
	// on an order whose approximate price has not been set.
	ErrPriceRequired = errors.New("order price must be set before broadcast or assignment")

	// ErrAlreadyAssigned is returned when an assignment action conflicts with
	// an existing assignment to a different vendor, or when a broadcast is
	// attempted on an assigned order.
	ErrAlreadyAssigned = errors.New("order is already assigned to a vendor")
)

// Order represents a customer's relocation job flowing through the
// assignment workflow. It is the aggregate root that owns lifecycle status,
// the approximate price, and the vendor assignment.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a non-empty service category
//   - The approximate price, when present, is positive
//   - assignedVendorID is set at most once (idempotent for the same vendor)
//     and only while the status allows assignment
//   - Status transitions follow the Status state machine
//
// The Order row is the serialization point for all assignment mutations:
// callers persist AssignVendor results through OrderRepository.Assign, which
// re-checks the invariant with a conditional update.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// serviceType is the relocation service category, e.g. "House Relocation"
	serviceType string

	// approxPrice is the admin-estimated price (nil until quoted)
	approxPrice *kernel.Price

	// assignedVendorID is the confirmed vendor's ID (nil while unassigned)
	assignedVendorID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no price and no vendor.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - serviceType: Relocation service category (must be non-empty)
//
// The price is quoted later through SetApproxPrice; broadcast and assignment
// are rejected until then.
func NewOrder(id kernel.UUID, serviceType string) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setServiceType(serviceType),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// Validates cross-field consistency: a vendor may only be present in statuses
// reached through assignment (Confirmed, InProgress, Completed, or Cancelled
// after confirmation).
func RestoreOrder(
	id kernel.UUID,
	serviceType string,
	approxPrice *kernel.Price,
	status Status,
	assignedVendorID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setServiceType(serviceType),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if approxPrice != nil {
		if err := approxPrice.Validate(); err != nil {
			return nil, err
		}
		price := *approxPrice
		o.approxPrice = &price
	}

	if assignedVendorID != nil {
		if err := assignedVendorID.Validate(); err != nil {
			return nil, err
		}
		if status != Confirmed && status != InProgress && status != Completed && status != Cancelled {
			return nil, errs.NewValueIsInvalidError("assignedVendorId is not allowed in status " + status.String())
		}
		vendorID := *assignedVendorID
		o.assignedVendorID = &vendorID
	}

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ServiceType returns the relocation service category.
func (o *Order) ServiceType() string {
	return o.serviceType
}

// ApproxPrice returns the quoted price, or nil if none has been set.
func (o *Order) ApproxPrice() *kernel.Price {
	return o.approxPrice
}

// AssignedVendor returns the confirmed vendor's ID, or nil while unassigned.
func (o *Order) AssignedVendor() *kernel.UUID {
	return o.assignedVendorID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// HasPrice reports whether a positive approximate price has been quoted.
func (o *Order) HasPrice() bool {
	return o.approxPrice != nil
}

// SetApproxPrice quotes or re-quotes the order's approximate price.
// The price must be a constructed (positive) Price value.
func (o *Order) SetApproxPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	o.approxPrice = &price
	return nil
}

// MarkBroadcasted records that the order has been fanned out to vendors.
//
// Preconditions:
//   - The approximate price is set (ErrPriceRequired otherwise)
//   - No vendor is assigned yet (ErrAlreadyAssigned otherwise)
//   - The status allows broadcasting (Pending or Broadcasted)
func (o *Order) MarkBroadcasted() error {
	if !o.HasPrice() {
		return ErrPriceRequired
	}
	if o.assignedVendorID != nil {
		return ErrAlreadyAssigned
	}

	newStatus, err := o.status.Broadcast()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignVendor assigns the order to a vendor and confirms it. This is the
// single enforcement point for the one-vendor-per-order invariant: every
// assignment path (approved response or direct assignment) goes through it.
//
// Rules:
//   - The approximate price must be set (ErrPriceRequired)
//   - Re-assigning the same vendor is an idempotent no-op
//   - Assigning a different vendor fails with ErrAlreadyAssigned
//   - The status must allow assignment (Pending or Broadcasted)
func (o *Order) AssignVendor(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	if o.assignedVendorID != nil {
		if o.assignedVendorID.IsEqual(vendorID) {
			return nil
		}
		return ErrAlreadyAssigned
	}

	if !o.HasPrice() {
		return ErrPriceRequired
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedVendorID = &vendorID
	return nil
}

// ChangeStatus performs a generic lifecycle transition on behalf of the
// order editor. Assignment-related transitions should use MarkBroadcasted
// and AssignVendor instead so their preconditions are enforced.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setServiceType validates and sets the service category.
func (o *Order) setServiceType(serviceType string) error {
	if serviceType == "" {
		return errs.NewValueIsRequiredError("serviceType")
	}
	o.serviceType = serviceType
	return nil
}
