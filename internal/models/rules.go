package models

import "github.com/shopspring/decimal"

// TaxRate is a row of tax_rates.
type TaxRate struct {
	TaxRateID   string          `db:"tax_rate_id"`
	WorkplaceID string          `db:"workplace_id"`
	Sigla       string          `db:"sigla"`
	Name        string          `db:"name"`
	Percentage  decimal.Decimal `db:"percentage"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}

// Rule is a row of posting_rules. Optional columns are nullable.
type Rule struct {
	RuleID      string              `db:"rule_id"`
	WorkplaceID string              `db:"workplace_id"`
	AccountID   string              `db:"account_id"`
	TaxRateID   *string             `db:"tax_rate_id"`
	Name        string              `db:"name"`
	Trigger     string              `db:"trigger_type"`
	SaleSubtype *string             `db:"sale_subtype"`
	SourceField *string             `db:"source_field"`
	Percentage  decimal.NullDecimal `db:"percentage"`
	IsActive    bool                `db:"is_active"`
	AuditFields
}
