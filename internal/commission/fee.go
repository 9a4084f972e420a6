package commission

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/emberoak/atelier-backend/pkg/errors"
)

var (
	minorUnitsPerMajor = decimal.NewFromInt(100)
	one                = decimal.NewFromInt(1)
)

// Breakdown is the minor-unit split for a single listing price.
type Breakdown struct {
	GrossMinor int64
	FeeMinor   int64
}

// ParseRate converts a configured rate string into a decimal and validates it.
func ParseRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing commission rate %q: %w", raw, err)
	}
	if err := validateRate(rate); err != nil {
		return decimal.Decimal{}, err
	}
	return rate, nil
}

// Compute converts a major-unit price into minor units and derives the
// application fee. Both numbers come from the same input so a session can
// never carry a fee computed against a different price.
func Compute(price decimal.Decimal, rate decimal.Decimal) (Breakdown, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return Breakdown{}, errors.New(errors.CodeValidation, "price must be positive")
	}
	if err := validateRate(rate); err != nil {
		return Breakdown{}, err
	}

	grossMinor := price.Mul(minorUnitsPerMajor).Round(0)
	feeMinor := grossMinor.Mul(rate).Round(0)

	breakdown := Breakdown{
		GrossMinor: grossMinor.IntPart(),
		FeeMinor:   feeMinor.IntPart(),
	}
	if breakdown.GrossMinor <= 0 {
		return Breakdown{}, errors.New(errors.CodeValidation, "price rounds to zero minor units")
	}
	if breakdown.FeeMinor > breakdown.GrossMinor {
		return Breakdown{}, errors.New(errors.CodeInternal, "fee exceeds gross amount")
	}
	return breakdown, nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) || rate.GreaterThanOrEqual(one) {
		return errors.New(errors.CodeValidation, "commission rate must be between 0 and 1 exclusive")
	}
	return nil
}
