package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// TaxRateReader defines read operations for tax rates
type TaxRateReader interface {
	// FindTaxRateByID retrieves a tax rate of the workplace, active or not.
	FindTaxRateByID(ctx context.Context, workplaceID string, taxRateID string) (*domain.TaxRate, error)

	// ListTaxRates retrieves the active tax rates of a workplace ordered by sigla.
	ListTaxRates(ctx context.Context, workplaceID string) ([]domain.TaxRate, error)
}

// TaxRateWriter defines write operations for tax rates
type TaxRateWriter interface {
	// SaveTaxRate persists a new tax rate. Returns ErrDuplicate on sigla collision.
	SaveTaxRate(ctx context.Context, rate domain.TaxRate) error

	// UpdateTaxRate updates an existing tax rate.
	UpdateTaxRate(ctx context.Context, rate domain.TaxRate) error

	// DeactivateTaxRate marks a tax rate as inactive.
	DeactivateTaxRate(ctx context.Context, workplaceID string, taxRateID string, userID string, now time.Time) error
}

// TaxRateRepositoryFacade combines all tax-rate-related repository interfaces
type TaxRateRepositoryFacade interface {
	TaxRateReader
	TaxRateWriter
}
