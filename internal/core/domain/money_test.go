package domain_test

import (
	"testing"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		percentage string
		expected   string
	}{
		{"ten percent", "1000", "10", "100"},
		{"full amount", "1234.56", "100", "1234.56"},
		{"zero percent", "999.99", "0", "0"},
		{"fractional percentage", "200", "3.65", "7.3"},
		{"rounds half away from zero", "0.05", "50", "0.03"},
		{"rounds down below half", "10.01", "33", "3.3"},
		{"negative adjustment", "-1000", "10", "-100"},
		{"negative half rounds away from zero", "-0.05", "50", "-0.03"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ApplyPercentage(decimal.RequireFromString(tc.base), decimal.RequireFromString(tc.percentage))
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestApplyPercentage_MatchesFormula(t *testing.T) {
	// A * p / 100 at scale 2 for a spread of values
	for a := int64(-500); a <= 500; a += 37 {
		for p := int64(0); p <= 100; p += 7 {
			base := decimal.New(a*13, -1)
			pct := decimal.New(p*3, -1)
			want := base.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
			assert.True(t, want.Equal(domain.ApplyPercentage(base, pct)), "base=%s pct=%s", base, pct)
		}
	}
}

func TestValidatePercentage(t *testing.T) {
	assert.NoError(t, domain.ValidatePercentage(decimal.Zero))
	assert.NoError(t, domain.ValidatePercentage(decimal.NewFromInt(100)))
	assert.NoError(t, domain.ValidatePercentage(decimal.RequireFromString("12.5")))

	assert.ErrorIs(t, domain.ValidatePercentage(decimal.RequireFromString("-0.01")), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.ValidatePercentage(decimal.RequireFromString("100.01")), apperrors.ErrValidation)
}

func TestValidatePercentage_Scale(t *testing.T) {
	assert.NoError(t, domain.ValidatePercentage(decimal.RequireFromString("12.3456")))
	assert.NoError(t, domain.ValidatePercentage(decimal.RequireFromString("12.50000")))
	assert.NoError(t, domain.ValidatePercentage(decimal.RequireFromString("100.0000000")))

	assert.ErrorIs(t, domain.ValidatePercentage(decimal.RequireFromString("12.34567")), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.ValidatePercentage(decimal.RequireFromString("0.00001")), apperrors.ErrValidation)
}
