package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireOperator lets the request through only when the authenticated user is
// operatorUserID. It must run after AuthMiddleware. An empty operatorUserID
// rejects everyone.
func RequireOperator(operatorUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if operatorUserID == "" || userID != operatorUserID {
			logger.Warn("Operator-only route denied", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Operator access required"})
			return
		}
		c.Next()
	}
}
