package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// AccountReader defines read operations for chart accounts
type AccountReader interface {
	// FindAccountByID retrieves an account of the workplace, active or not.
	FindAccountByID(ctx context.Context, workplaceID string, accountID string) (*domain.Account, error)

	// FindAccountByLegacyName retrieves the account whose legacy name matches exactly.
	// Active accounts are preferred when more than one carries the same legacy name.
	FindAccountByLegacyName(ctx context.Context, workplaceID string, legacyName string) (*domain.Account, error)

	// ListAccounts retrieves the active accounts of a workplace matching filter,
	// ordered by group display order, account display order and name.
	ListAccounts(ctx context.Context, workplaceID string, filter domain.AccountFilter) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart accounts
type AccountWriter interface {
	// SaveAccount persists a new account. Returns ErrDuplicate when an active
	// account with the same (workplace, group, name) exists.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive. The row is kept.
	DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
