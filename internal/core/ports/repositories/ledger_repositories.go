package repositories

import (
	"context"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// ListEntriesByEvent retrieves the entries posted for one business event.
	ListEntriesByEvent(ctx context.Context, workplaceID string, eventID string) ([]domain.LedgerEntry, error)

	// GroupHasEntries reports whether any entry, in any workplace, posts to an
	// account under the group.
	GroupHasEntries(ctx context.Context, groupID string) (bool, error)
}

// LedgerWriter defines write operations for ledger entries. Entries are
// append-only: there is no update or delete.
type LedgerWriter interface {
	// SaveLedgerEntry appends one entry. Returns ErrDuplicate when an entry for
	// the same (workplace, event, rule) exists.
	SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
