package services

import (
	"context"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// IncomeStatement aggregates the ledger entries posted in [start, end]
	// into the DRE tree and its derived totals.
	IncomeStatement(ctx context.Context, workplaceID string, start, end time.Time, userID string) (*domain.IncomeStatement, error)
}
