package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/core/fiscal"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
)

type recommendationService struct {
	BaseService
}

// NewRecommendationService creates the advisory rules service.
func NewRecommendationService(options ...ServiceOption) portssvc.RecommendationSvc {
	return &recommendationService{BaseService: newBaseService(options...)}
}

var _ portssvc.RecommendationSvc = (*recommendationService)(nil)

func (s *recommendationService) GenerateRecommendations(ctx context.Context, req dto.RecommendationsRequest) []domain.Recommendation {
	recs := fiscal.GenerateAll(req.Financial, req.Invoices, req.Inventory, s.Now())
	s.Record(ctx, "recommendations", "generate", nil)
	s.LogDebug(ctx, "Recommendations generated", slog.Int("count", len(recs)))
	return recs
}
