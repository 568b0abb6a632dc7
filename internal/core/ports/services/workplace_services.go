package services

import (
	"context"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
)

// WorkplaceAuthorizerSvc defines operations for workplace authorization.
// Workplace membership lives outside this service; implementations resolve it
// and return apperrors.ErrForbidden when the user lacks the role.
type WorkplaceAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a workplace.
	AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error
}
