package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	"github.com/SscSPs/dre_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps service errors onto HTTP status codes. Only client
// errors echo the error text; internal failures get a generic message.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User forbidden to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have permission to " + action})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found while trying to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict while trying to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error while trying to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// requestScope reads the authenticated user and the workplace path parameter.
// It writes the error response itself and returns ok=false when either is missing.
func requestScope(c *gin.Context) (logger *slog.Logger, workplaceID string, userID string, ok bool) {
	logger = middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return logger, "", "", false
	}

	workplaceID = c.Param("workplace_id")
	if workplaceID == "" {
		logger.Warn("Workplace ID missing from path")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Workplace ID required in path"})
		return logger, "", "", false
	}

	logger = logger.With(slog.String("workplace_id", workplaceID))
	return logger, workplaceID, userID, true
}

func bindingError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
