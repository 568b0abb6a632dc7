package dto

import (
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaxRateRequest defines the data needed to register a tax rate.
type CreateTaxRateRequest struct {
	Sigla      string          `json:"sigla" binding:"required,max=20"`
	Name       string          `json:"name" binding:"required,max=100"`
	Percentage decimal.Decimal `json:"percentage" binding:"percentage" swaggertype:"string" example:"10.00"`
}

// UpdateTaxRateRequest defines the data allowed for updating a tax rate.
type UpdateTaxRateRequest struct {
	Sigla      *string          `json:"sigla" binding:"omitempty,min=1,max=20"`
	Name       *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Percentage *decimal.Decimal `json:"percentage" binding:"omitempty,percentage" swaggertype:"string"`
	IsActive   *bool            `json:"isActive"`
}

// TaxRateResponse defines the data returned for a tax rate.
type TaxRateResponse struct {
	TaxRateID     string          `json:"taxRateID"`
	WorkplaceID   string          `json:"workplaceID"`
	Sigla         string          `json:"sigla"`
	Name          string          `json:"name"`
	Percentage    decimal.Decimal `json:"percentage" swaggertype:"string"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListTaxRatesResponse wraps the list of tax rates.
type ListTaxRatesResponse struct {
	TaxRates []TaxRateResponse `json:"taxRates"`
}

// ToTaxRateResponse converts a domain.TaxRate to TaxRateResponse DTO
func ToTaxRateResponse(t *domain.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		TaxRateID:     t.TaxRateID,
		WorkplaceID:   t.WorkplaceID,
		Sigla:         t.Sigla,
		Name:          t.Name,
		Percentage:    t.Percentage,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ToListTaxRatesResponse converts a slice of domain.TaxRate to ListTaxRatesResponse
func ToListTaxRatesResponse(rates []domain.TaxRate) ListTaxRatesResponse {
	res := ListTaxRatesResponse{TaxRates: make([]TaxRateResponse, len(rates))}
	for i := range rates {
		res.TaxRates[i] = ToTaxRateResponse(&rates[i])
	}
	return res
}
