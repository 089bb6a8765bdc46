package kernel

import (
	"fmt"

	"relomarket/internal/pkg/errs"

	"github.com/Rhymond/go-money"
)

// priceCurrency is the marketplace settlement currency. All order prices and
// vendor counter-offers are quoted in it.
const priceCurrency = money.INR

// ErrPriceIsNotConstructed indicates that a Price was not initialized through
// NewPrice. Returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is a value object for a positive money amount in the marketplace
// currency, backed by go-money. Amounts are in the currency's minor units.
//
// A Price is always positive: "no price yet" is represented by a nil *Price
// on the owning entity, never by a zero Price. The zero value is invalid and
// must be constructed via NewPrice.
type Price struct {
	value *money.Money
}

// NewPrice creates a Price from an amount in minor currency units.
// Returns a validation error for zero or negative amounts.
func NewPrice(amount int64) (Price, error) {
	if amount <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}
	return Price{value: money.New(amount, priceCurrency)}, nil
}

// Amount returns the amount in minor currency units.
func (p Price) Amount() int64 {
	return p.value.Amount()
}

// Currency returns the ISO 4217 currency code.
func (p Price) Currency() string {
	return p.value.Currency().Code
}

// String returns the formatted display value, e.g. "₹80.00".
func (p Price) String() string {
	return p.value.Display()
}

// IsEqual reports whether two prices carry the same amount.
// Zero-value prices are never equal to anything.
func (p Price) IsEqual(other Price) bool {
	if p.value == nil || other.value == nil {
		return false
	}
	return p.value.Amount() == other.value.Amount()
}

// Validate returns ErrPriceIsNotConstructed for the zero Price.
func (p Price) Validate() error {
	if p.value == nil {
		return ErrPriceIsNotConstructed
	}
	return nil
}
