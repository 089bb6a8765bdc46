package response

import (
	"fmt"

	"relomarket/internal/pkg/errs"
)

// Type classifies a vendor's reply to a broadcast.
type Type int

const (
	// TypeUnknown represents an invalid or undefined response type.
	TypeUnknown Type = iota

	// TypeAccept means the vendor takes the order at the quoted price.
	TypeAccept

	// TypeReject means the vendor declines the order.
	TypeReject

	// TypePriceUpdate means the vendor counters with a different price.
	TypePriceUpdate
)

// getTypeStrings returns the stored names for response types.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:     "unknown",
		TypeAccept:      "accept",
		TypeReject:      "reject",
		TypePriceUpdate: "price_update",
	}
}

// TypeFromString parses a stored name into a Type.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if t != TypeUnknown && name == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"responseType",
		fmt.Errorf("%q is not a known response type", s),
	)
}

// Validate checks that the Type is one of the defined kinds.
func (t Type) Validate() error {
	switch t {
	case TypeAccept, TypeReject, TypePriceUpdate:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"responseType",
			fmt.Errorf("%d is not a valid response type", int(t)),
		)
	}
}

// String returns the stored name of the response type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
