package repositories

import (
	"context"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// GroupReader defines read operations for DRE groups
type GroupReader interface {
	// FindGroupByID retrieves a group by its unique identifier.
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroups retrieves every group ordered by display order, then code.
	ListGroups(ctx context.Context) ([]domain.Group, error)
}

// GroupWriter defines write operations for DRE groups. Groups are seeded, so
// there is no create or delete.
type GroupWriter interface {
	// UpdateGroup overwrites name, kind, display order and active flag.
	UpdateGroup(ctx context.Context, group domain.Group) error
}

// GroupRepositoryFacade combines all group-related repository interfaces
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
