package services

import (
	"sort"

	"relomarket/internal/core/domain/model/vendor"
	"relomarket/internal/pkg/errs"
)

// maxFanOut caps how many vendors a single broadcast may reach.
const maxFanOut = 100

// RecipientSelector is a domain service that picks the vendors to receive a
// broadcast for an order.
//
// Selection rules:
//   - Only approved, online vendors are considered
//   - Vendors are ordered by rating, highest first; ties keep their input order
//   - The result is capped at maxVendors
//
// Selecting zero vendors is not an error: the caller decides whether an empty
// fan-out is acceptable.
type RecipientSelector struct{}

// NewRecipientSelector creates a new RecipientSelector instance.
func NewRecipientSelector() RecipientSelector {
	return RecipientSelector{}
}

// Select returns up to maxVendors eligible vendors ordered by rating.
//
// Parameters:
//   - vendors: Candidate vendors to consider (each must be valid)
//   - maxVendors: Fan-out cap, between 1 and 100
func (s RecipientSelector) Select(vendors []*vendor.Vendor, maxVendors int) ([]*vendor.Vendor, error) {
	if maxVendors < 1 || maxVendors > maxFanOut {
		return nil, errs.NewValueIsOutOfRangeError("maxVendors", maxVendors, 1, maxFanOut)
	}

	eligible := make([]*vendor.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if v.IsEligibleForBroadcast() {
			eligible = append(eligible, v)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Rating() > eligible[j].Rating()
	})

	if len(eligible) > maxVendors {
		eligible = eligible[:maxVendors]
	}

	return eligible, nil
}
