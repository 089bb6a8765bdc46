package broadcast

import (
	"fmt"

	"relomarket/internal/pkg/errs"
)

// Status represents the vendor's reaction to a broadcast.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the vendor has not reacted yet and the response
	// window is still considered open.
	StatusPending

	// StatusAccepted means the vendor accepted the offered order.
	StatusAccepted

	// StatusRejected means the vendor declined the offered order.
	StatusRejected

	// StatusExpired means the response window closed without a reaction.
	StatusExpired
)

// getStatusStrings returns the stored names for broadcast statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
		StatusExpired:  "expired",
	}
}

// StatusFromString parses a stored name into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known broadcast status", s),
	)
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusExpired:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid broadcast status", int(s)),
		)
	}
}

// String returns the stored name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
