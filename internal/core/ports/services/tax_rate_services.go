package services

import (
	"context"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/SscSPs/dre_backoffice/internal/dto"
)

// TaxRateSvcFacade defines operations on the tax/percentage registry
type TaxRateSvcFacade interface {
	CreateTaxRate(ctx context.Context, workplaceID string, req dto.CreateTaxRateRequest, userID string) (*domain.TaxRate, error)
	GetTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string) (*domain.TaxRate, error)
	ListTaxRates(ctx context.Context, workplaceID string, userID string) ([]domain.TaxRate, error)
	UpdateTaxRate(ctx context.Context, workplaceID string, taxRateID string, req dto.UpdateTaxRateRequest, userID string) (*domain.TaxRate, error)
	DeactivateTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string) error
}
