package handlers

import (
	"net/http"

	"github.com/SscSPs/dre_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/middleware"
	"github.com/SscSPs/dre_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	RegisterValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	chain := []gin.HandlerFunc{}
	if rateLimiter != nil {
		chain = append(chain, middleware.RateLimit(rateLimiter))
	}
	chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret))
	v1 := r.Group("/api/v1", chain...)

	RegisterGroupRoutes(v1, services.Chart, cfg.OperatorUserID)

	workplace := v1.Group("/workplaces/:workplace_id")
	RegisterAccountRoutes(workplace, services.Chart)
	RegisterTaxRateRoutes(workplace, services.TaxRate)
	RegisterRuleRoutes(workplace, services.Rule)
	RegisterPostingRoutes(workplace, services.Posting)
	RegisterReportingRoutes(workplace, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
