package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// ReportingRepository defines operations for retrieving income statement data
type ReportingRepository interface {
	// GetAccountTotals sums the ledger entries of a workplace whose posting date
	// lies in [start, end] per account, joined to the account and its group.
	// Inactive accounts are included.
	GetAccountTotals(ctx context.Context, workplaceID string, start, end time.Time) ([]domain.AccountTotal, error)
}
