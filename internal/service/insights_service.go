//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"

	"kaapi/backend/internal/model"
	"kaapi/backend/internal/repository"
)

// InsightsService serves the read-only dashboard widgets.
type InsightsService interface {
	Forecast(ctx context.Context) ([]model.ForecastPoint, error)
	Inventory(ctx context.Context) ([]model.InventoryItem, error)
	Pricing(ctx context.Context) ([]model.PricingRecommendation, error)
	ChurnRisk(ctx context.Context) ([]model.ChurnRiskCustomer, error)
	Segments(ctx context.Context) ([]model.CustomerSegment, error)
	Attribution(ctx context.Context) ([]model.AttributionChannel, error)
	Alerts(ctx context.Context) ([]model.AnomalyAlert, error)
}

type insightsService struct {
	insights repository.InsightsRepository
}

func NewInsightsService(insights repository.InsightsRepository) InsightsService {
	return &insightsService{insights: insights}
}

func (s *insightsService) Forecast(ctx context.Context) ([]model.ForecastPoint, error) {
	return s.insights.ListForecast(ctx)
}

func (s *insightsService) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	return s.insights.ListInventory(ctx)
}

func (s *insightsService) Pricing(ctx context.Context) ([]model.PricingRecommendation, error) {
	return s.insights.ListPricing(ctx)
}

func (s *insightsService) ChurnRisk(ctx context.Context) ([]model.ChurnRiskCustomer, error) {
	return s.insights.ListChurnRisk(ctx)
}

func (s *insightsService) Segments(ctx context.Context) ([]model.CustomerSegment, error) {
	return s.insights.ListSegments(ctx)
}

func (s *insightsService) Attribution(ctx context.Context) ([]model.AttributionChannel, error) {
	return s.insights.ListAttribution(ctx)
}

func (s *insightsService) Alerts(ctx context.Context) ([]model.AnomalyAlert, error) {
	return s.insights.ListAlerts(ctx)
}
