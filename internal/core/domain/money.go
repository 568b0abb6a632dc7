package domain

import (
	"fmt"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places every posted amount is rounded to.
const AmountScale int32 = 2

// PercentageScale is the number of decimal places a percentage may carry.
// It matches the NUMERIC(9, 4) percentage columns.
const PercentageScale int32 = 4

var hundred = decimal.NewFromInt(100)

// RoundAmount rounds d to AmountScale places, halves away from zero.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// ApplyPercentage returns base * percentage / 100 rounded to AmountScale.
// The multiplication is exact; rounding happens once at the end.
func ApplyPercentage(base, percentage decimal.Decimal) decimal.Decimal {
	return RoundAmount(base.Mul(percentage).Div(hundred))
}

// ValidatePercentage checks that p lies in the closed interval [0, 100] and
// carries no more than PercentageScale decimal places. Trailing zeros do not
// count, so 12.50000 is accepted.
func ValidatePercentage(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(hundred) {
		return fmt.Errorf("%w: percentage must be between 0 and 100, got %s", apperrors.ErrValidation, p.String())
	}
	if !p.Equal(p.Truncate(PercentageScale)) {
		return fmt.Errorf("%w: percentage may have at most %d decimal places, got %s", apperrors.ErrValidation, PercentageScale, p.String())
	}
	return nil
}
