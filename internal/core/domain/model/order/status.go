package order

import (
	"fmt"

	"relomarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to keep orders on the correct workflow.
//
// State transitions:
//
//	Pending ──> Broadcasted ──> Confirmed ──> InProgress ──> Completed
//
// Direct assignment additionally allows Pending ──> Confirmed, Broadcasted
// may re-broadcast to itself, and Cancelled is reachable from every
// pre-terminal state.
//
// Broadcasting is allowed from Pending and Broadcasted only. Confirmed,
// InProgress, and Completed are terminal with respect to vendor assignment:
// no further broadcast or assignment may happen from them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order,
	// before any broadcast or assignment.
	Pending

	// Broadcasted indicates the order has been fanned out to vendors
	// and is awaiting responses. Re-broadcasting is allowed.
	Broadcasted

	// Confirmed indicates a vendor has been assigned, either through an
	// approved response or direct assignment.
	Confirmed

	// InProgress indicates the assigned vendor has started the job.
	InProgress

	// Completed indicates the relocation job has finished.
	// Final state, no further transitions.
	Completed

	// Cancelled indicates the order was called off before completion.
	// Final state, no further transitions.
	Cancelled
)

// getStatusStrings returns the display names for all statuses, matching the
// labels the dashboard stores and shows.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Pending:     "Pending",
		Broadcasted: "Broadcasted",
		Confirmed:   "Confirmed",
		InProgress:  "In Progress",
		Completed:   "Completed",
		Cancelled:   "Cancelled",
	}
}

// getAllowedTransitions returns the set of target statuses reachable from
// each status.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:     {Broadcasted, Confirmed, Cancelled},
		Broadcasted: {Broadcasted, Confirmed, Cancelled},
		Confirmed:   {InProgress, Cancelled},
		InProgress:  {Completed, Cancelled},
		Completed:   {},
		Cancelled:   {},
	}
}

// StatusFromString parses a display name ("Pending", "In Progress", ...)
// into a Status. Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known order status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateBroadcast checks whether a broadcast fan-out may start from the
// current status. Only Pending and Broadcasted orders may be broadcast;
// once a vendor is confirmed the order leaves the negotiation pool.
func (s Status) ValidateBroadcast() error {
	if s != Pending && s != Broadcasted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to broadcast from", s),
		)
	}
	return nil
}

// ValidateAssign checks whether vendor assignment may happen from the current
// status without performing the transition.
func (s Status) ValidateAssign() error {
	if s != Pending && s != Broadcasted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign a vendor from", s),
		)
	}
	return nil
}

// Broadcast transitions the status to Broadcasted.
// Valid from Pending (first fan-out) and Broadcasted (re-broadcast).
func (s Status) Broadcast() (Status, error) {
	if err := s.ValidateBroadcast(); err != nil {
		return 0, err
	}
	return Broadcasted, nil
}

// Confirm transitions the status to Confirmed as part of vendor assignment.
// Valid from Pending (direct assignment) and Broadcasted (approved response).
func (s Status) Confirm() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return Confirmed, nil
}

// TransitionTo performs a generic transition used by the order editor.
// Returns the target status when the transition is allowed, or a validation
// error naming both states when it is not.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", s, target),
	)
}
