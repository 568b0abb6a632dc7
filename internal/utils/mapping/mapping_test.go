package mapping_test

import (
	"testing"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/SscSPs/dre_backoffice/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountMapping_EmptyOptionalColumnsAreNull(t *testing.T) {
	m := mapping.ToModelAccount(domain.Account{AccountID: "a", Name: "Sales"})
	assert.Nil(t, m.Code)
	assert.Nil(t, m.LegacyName)

	m = mapping.ToModelAccount(domain.Account{AccountID: "a", Name: "Sales", LegacyName: "Vendas"})
	require.NotNil(t, m.LegacyName)
	assert.Equal(t, "Vendas", mapping.ToDomainAccount(m).LegacyName)
}

func TestRuleMapping_OptionalFields(t *testing.T) {
	plain := mapping.ToModelRule(domain.Rule{RuleID: "r", Trigger: domain.TriggerSaleConfirmed})
	assert.False(t, plain.Percentage.Valid)
	assert.Nil(t, plain.SaleSubtype)
	assert.Nil(t, plain.SourceField)

	back := mapping.ToDomainRule(plain)
	assert.Nil(t, back.Percentage)
	assert.Nil(t, back.SaleSubtype)
	assert.Equal(t, domain.FieldTotalAmount, back.SelectedField())

	pct := decimal.RequireFromString("12.5")
	gift := domain.SubtypeGift
	freight := domain.FieldFreightAmount
	full := mapping.ToDomainRule(mapping.ToModelRule(domain.Rule{
		RuleID: "r", Trigger: domain.TriggerSaleConfirmed,
		Percentage: &pct, SaleSubtype: &gift, SourceField: &freight,
	}))
	require.NotNil(t, full.Percentage)
	assert.Equal(t, "12.5", full.Percentage.String())
	assert.Equal(t, domain.SubtypeGift, *full.SaleSubtype)
	assert.Equal(t, domain.FieldFreightAmount, full.SelectedField())
}
