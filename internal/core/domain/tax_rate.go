package domain

import "github.com/shopspring/decimal"

// TaxRate is a named percentage that rules can reference instead of carrying
// their own percentage.
type TaxRate struct {
	TaxRateID   string          `json:"taxRateID"`
	WorkplaceID string          `json:"workplaceID"`
	Sigla       string          `json:"sigla"` // Short code, unique per workplace (e.g. "IVA")
	Name        string          `json:"name"`
	Percentage  decimal.Decimal `json:"percentage"` // 0 - 100
	IsActive    bool            `json:"isActive"`
	AuditFields
}
