package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/dre_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkplaceAuthorizer portssvc.WorkplaceAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a workplace
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	if s.WorkplaceAuthorizer != nil {
		return s.WorkplaceAuthorizer.AuthorizeUserAction(ctx, userID, workplaceID, requiredRole)
	}
	// Membership is resolved outside this service; without an authorizer every
	// authenticated user may act on any workplace.
	s.LogDebug(ctx, "No workplace authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("workplace_id", workplaceID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
