package services

import (
	"context"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// PostingSvcFacade defines the posting engine
type PostingSvcFacade interface {
	// PostEvent turns a business event into ledger entries, one per matching
	// active rule, atomically. When ctx already carries a transaction the
	// posting joins it.
	PostEvent(ctx context.Context, event domain.BusinessEvent, userID string) (*domain.PostingResult, error)

	// ListEntriesByEvent retrieves the entries posted for an event.
	ListEntriesByEvent(ctx context.Context, workplaceID string, eventID string, userID string) ([]domain.LedgerEntry, error)
}
