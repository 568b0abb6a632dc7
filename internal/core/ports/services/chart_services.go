package services

import (
	"context"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	"github.com/SscSPs/dre_backoffice/internal/dto"
)

// GroupSvc defines operations on the shared DRE groups
type GroupSvc interface {
	// ListGroups retrieves every group ordered by display order.
	ListGroups(ctx context.Context) ([]domain.Group, error)

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, groupID string) (*domain.Group, error)

	// UpdateGroup changes name, display order, active flag or kind. The kind
	// cannot change once ledger entries post to accounts under the group.
	UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error)
}

// AccountReaderSvc defines read operations for chart accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, workplaceID string, accountID string, userID string) (*domain.Account, error)

	// ListAccounts retrieves the active accounts of a workplace.
	ListAccounts(ctx context.Context, workplaceID string, userID string) ([]domain.Account, error)

	// ListAccountsByGroup retrieves the active accounts of a workplace under one group.
	ListAccountsByGroup(ctx context.Context, workplaceID string, groupID string, userID string) ([]domain.Account, error)

	// ListAccountsByKind retrieves the active accounts of a workplace under groups of a kind.
	ListAccountsByKind(ctx context.Context, workplaceID string, kind domain.GroupKind, userID string) ([]domain.Account, error)

	// FindAccountByLegacyName resolves a legacy classification name. Migration only.
	FindAccountByLegacyName(ctx context.Context, workplaceID string, legacyName string, userID string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for chart accounts
type AccountWriterSvc interface {
	// CreateAccount persists a new account under a group.
	CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount soft-deletes an account.
	DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error
}

// ChartSvcFacade combines all chart-of-accounts service interfaces
// This is a facade for clients that need access to all operations
type ChartSvcFacade interface {
	GroupSvc
	AccountReaderSvc
	AccountWriterSvc
}
