package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRecommendationRoutes registers the advisory rules endpoint.
func RegisterRecommendationRoutes(rg *gin.RouterGroup, recommendationService portssvc.RecommendationSvc) {
	rg.POST("/recommendations", generateRecommendations(recommendationService))
}

// generateRecommendations godoc
// @Summary Generate business recommendations
// @Description Evaluates the cash flow, profitability, tax, collections and inventory threshold rules
// @Tags recommendations
// @Accept  json
// @Produce  json
// @Param   request body dto.RecommendationsRequest true "Aggregated financial, invoice and inventory figures"
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /recommendations [post]
func generateRecommendations(svc portssvc.RecommendationSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		var req dto.RecommendationsRequest
		if !bindJSON(c, logger, &req, "GenerateRecommendations") {
			return
		}

		recs := svc.GenerateRecommendations(c.Request.Context(), req)
		logger.Info("Recommendations generated", slog.Int("count", len(recs)))
		c.JSON(http.StatusOK, dto.RecommendationsResponse{Recommendations: recs, Count: len(recs)})
	}
}
