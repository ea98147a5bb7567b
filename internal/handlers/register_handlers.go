package handlers

import (
	"net/http"

	"github.com/SscSPs/compta_maroc/cmd/docs"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/middleware"
	"github.com/SscSPs/compta_maroc/internal/platform/config"
	"github.com/SscSPs/compta_maroc/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// m may be nil when metrics are disabled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) {
	r.GET("/health", healthCheck)

	if m != nil {
		r.GET("/metrics", middleware.MetricsEndpoint(m))
	}

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// healthCheck godoc
// @Summary Show the status of server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	var parserOptions []jwt.ParserOption
	if cfg.JWTIssuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(cfg.JWTIssuer))
	}
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, parserOptions...))

	RegisterVatRoutes(v1, service.Vat)
	RegisterPayrollRoutes(v1, service.Payroll)
	RegisterInvoiceRoutes(v1, service.Invoice)
	RegisterRecommendationRoutes(v1, service.Recommendation)
	RegisterAccountRoutes(v1, service.Account)
	RegisterJournalEntryRoutes(v1, service.JournalEntry)
	RegisterLedgerRoutes(v1, service.Ledger)
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
