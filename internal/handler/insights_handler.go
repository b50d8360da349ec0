package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kaapi/backend/internal/service"
)

// InsightsHandler serves the read-only dashboard widgets. Field names
// mirror the underlying table columns because the frontend renders the
// rows directly.
type InsightsHandler struct {
	service service.InsightsService
}

type forecastResponse struct {
	ID              int64    `json:"id"`
	Date            string   `json:"date"`
	CurrentRevenue  *float64 `json:"current_revenue"`
	ForecastRevenue float64  `json:"forecast_revenue"`
	LowerBound      float64  `json:"lower_bound"`
	UpperBound      float64  `json:"upper_bound"`
}

type inventoryResponse struct {
	ID           int64  `json:"id"`
	ProductName  string `json:"product_name"`
	CurrentStock int64  `json:"current_stock"`
	OptimalStock int64  `json:"optimal_stock"`
	DaysSupply   int64  `json:"days_supply"`
	ReorderPoint int64  `json:"reorder_point"`
	Status       string `json:"status"`
}

type pricingResponse struct {
	ID               int64   `json:"id"`
	ProductName      string  `json:"product_name"`
	CurrentPrice     float64 `json:"current_price"`
	RecommendedPrice float64 `json:"recommended_price"`
	ExpectedImpact   float64 `json:"expected_impact"`
	Reason           string  `json:"reason"`
}

type churnRiskResponse struct {
	ID               int64   `json:"id"`
	CustomerName     string  `json:"customer_name"`
	RiskScore        float64 `json:"risk_score"`
	Reason           string  `json:"reason"`
	LTVAtRisk        float64 `json:"ltv_at_risk"`
	LastPurchaseDays int64   `json:"last_purchase_days"`
}

type segmentResponse struct {
	ID              int64           `json:"id"`
	SegmentName     string          `json:"segment_name"`
	CustomerCount   int64           `json:"customer_count"`
	Revenue         float64         `json:"revenue"`
	GrowthRate      float64         `json:"growth_rate"`
	Characteristics json.RawMessage `json:"characteristics"`
}

type attributionResponse struct {
	ID          int64   `json:"id"`
	ChannelName string  `json:"channel_name"`
	Revenue     float64 `json:"revenue"`
	ROI         float64 `json:"roi"`
	Orders      int64   `json:"orders"`
}

type alertResponse struct {
	ID        int64  `json:"id"`
	AlertType string `json:"alert_type"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

func (h *InsightsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/forecast", h.Forecast)
	g.GET("/inventory", h.Inventory)
	g.GET("/pricing", h.Pricing)
	g.GET("/customers/churn", h.ChurnRisk)
	g.GET("/customers/segments", h.Segments)
	g.GET("/attribution", h.Attribution)
	g.GET("/alerts", h.Alerts)
}

func (h *InsightsHandler) Forecast(c echo.Context) error {
	points, err := h.service.Forecast(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]forecastResponse, 0, len(points))
	for _, p := range points {
		var current *float64
		if p.CurrentRevenue != nil {
			v := p.CurrentRevenue.InexactFloat64()
			current = &v
		}
		resp = append(resp, forecastResponse{
			ID:              p.ID,
			Date:            p.Date,
			CurrentRevenue:  current,
			ForecastRevenue: p.ForecastRevenue.InexactFloat64(),
			LowerBound:      p.LowerBound.InexactFloat64(),
			UpperBound:      p.UpperBound.InexactFloat64(),
		})
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

func (h *InsightsHandler) Inventory(c echo.Context) error {
	items, err := h.service.Inventory(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]inventoryResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, inventoryResponse{
			ID:           it.ID,
			ProductName:  it.ProductName,
			CurrentStock: it.CurrentStock,
			OptimalStock: it.OptimalStock,
			DaysSupply:   it.DaysSupply,
			ReorderPoint: it.ReorderPoint,
			Status:       it.Status,
		})
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

func (h *InsightsHandler) Pricing(c echo.Context) error {
	recs, err := h.service.Pricing(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]pricingResponse, 0, len(recs))
	for _, r := range recs {
		resp = append(resp, pricingResponse{
			ID:               r.ID,
			ProductName:      r.ProductName,
			CurrentPrice:     r.CurrentPrice.InexactFloat64(),
			RecommendedPrice: r.RecommendedPrice.InexactFloat64(),
			ExpectedImpact:   r.ExpectedImpact,
			Reason:           r.Reason,
		})
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

func (h *InsightsHandler) ChurnRisk(c echo.Context) error {
	customers, err := h.service.ChurnRisk(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]churnRiskResponse, 0, len(customers))
	for _, cu := range customers {
		resp = append(resp, churnRiskResponse{
			ID:               cu.ID,
			CustomerName:     cu.CustomerName,
			RiskScore:        cu.RiskScore,
			Reason:           cu.Reason,
			LTVAtRisk:        cu.LTVAtRisk.InexactFloat64(),
			LastPurchaseDays: cu.LastPurchaseDays,
		})
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

func (h *InsightsHandler) Segments(c echo.Context) error {
	segments, err := h.service.Segments(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]segmentResponse, 0, len(segments))
	for _, s := range segments {
		resp = append(resp, segmentResponse{
			ID:              s.ID,
			SegmentName:     s.SegmentName,
			CustomerCount:   s.CustomerCount,
			Revenue:         s.Revenue.InexactFloat64(),
			GrowthRate:      s.GrowthRate,
			Characteristics: json.RawMessage(s.Characteristics),
		})
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

func (h *InsightsHandler) Attribution(c echo.Context) error {
	channels, err := h.service.Attribution(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]attributionResponse, 0, len(channels))
	for _, ch := range channels {
		resp = append(resp, attributionResponse{
			ID:          ch.ID,
			ChannelName: ch.ChannelName,
			Revenue:     ch.Revenue.InexactFloat64(),
			ROI:         ch.ROI,
			Orders:      ch.Orders,
		})
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

func (h *InsightsHandler) Alerts(c echo.Context) error {
	alerts, err := h.service.Alerts(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		resp = append(resp, alertResponse{
			ID:        a.ID,
			AlertType: a.AlertType,
			Severity:  a.Severity,
			Message:   a.Message,
			Timestamp: a.Timestamp.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}
