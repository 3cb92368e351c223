package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Amount bounds for goal money fields.
const (
	MaxAmountIntegerDigits = 15
	MaxAmountDecimalPlaces = 8
)

var (
	// ErrAmountTooLarge is returned for amounts with more integer digits than MaxAmountIntegerDigits.
	ErrAmountTooLarge = errors.New("must be less than 1000000000000000")

	// ErrAmountTooPrecise is returned for amounts with more than MaxAmountDecimalPlaces decimal places.
	ErrAmountTooPrecise = errors.New("must have at most 8 decimal places")
)

// CheckAmountBounds rejects amounts outside the supported magnitude and
// precision. It only inspects the exponent and coefficient, so values such
// as 1e999999999 are refused without being expanded.
func CheckAmountBounds(amount decimal.Decimal) error {
	exp := int64(amount.Exponent())
	if exp < -MaxAmountDecimalPlaces {
		return ErrAmountTooPrecise
	}
	if int64(amount.NumDigits())+exp > MaxAmountIntegerDigits {
		return ErrAmountTooLarge
	}
	return nil
}
