//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"kaapi/backend/internal/model"
)

// InsightsRepository reads the dashboard widget tables. These tables are
// seeded or refreshed upstream; the API never writes them.
type InsightsRepository interface {
	ListForecast(ctx context.Context) ([]model.ForecastPoint, error)
	ListInventory(ctx context.Context) ([]model.InventoryItem, error)
	ListPricing(ctx context.Context) ([]model.PricingRecommendation, error)
	ListChurnRisk(ctx context.Context) ([]model.ChurnRiskCustomer, error)
	ListSegments(ctx context.Context) ([]model.CustomerSegment, error)
	ListAttribution(ctx context.Context) ([]model.AttributionChannel, error)
	ListAlerts(ctx context.Context) ([]model.AnomalyAlert, error)
}

type insightsRepository struct {
	db *sql.DB
}

func NewInsightsRepository(db *sql.DB) InsightsRepository {
	return &insightsRepository{db: db}
}

func (r *insightsRepository) ListForecast(ctx context.Context) ([]model.ForecastPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, current_revenue, forecast_revenue, lower_bound, upper_bound, created_at
		FROM forecast_data ORDER BY date ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.ForecastPoint
	for rows.Next() {
		var p model.ForecastPoint
		var current sql.NullString
		var forecast, lower, upper, createdAt string
		if err := rows.Scan(&p.ID, &p.Date, &current, &forecast, &lower, &upper, &createdAt); err != nil {
			return nil, err
		}
		if current.Valid {
			value := parseDecimal(current.String)
			p.CurrentRevenue = &value
		}
		p.ForecastRevenue = parseDecimal(forecast)
		p.LowerBound = parseDecimal(lower)
		p.UpperBound = parseDecimal(upper)
		p.CreatedAt, _ = parseTime(createdAt)
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *insightsRepository) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_name, current_stock, optimal_stock, days_supply, reorder_point, status, created_at
		FROM inventory_items ORDER BY days_supply ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		var item model.InventoryItem
		var createdAt string
		if err := rows.Scan(&item.ID, &item.ProductName, &item.CurrentStock, &item.OptimalStock,
			&item.DaysSupply, &item.ReorderPoint, &item.Status, &createdAt); err != nil {
			return nil, err
		}
		item.CreatedAt, _ = parseTime(createdAt)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *insightsRepository) ListPricing(ctx context.Context) ([]model.PricingRecommendation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_name, current_price, recommended_price, expected_impact, reason, created_at
		FROM pricing_recommendations ORDER BY expected_impact DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []model.PricingRecommendation
	for rows.Next() {
		var rec model.PricingRecommendation
		var current, recommended, createdAt string
		if err := rows.Scan(&rec.ID, &rec.ProductName, &current, &recommended,
			&rec.ExpectedImpact, &rec.Reason, &createdAt); err != nil {
			return nil, err
		}
		rec.CurrentPrice = parseDecimal(current)
		rec.RecommendedPrice = parseDecimal(recommended)
		rec.CreatedAt, _ = parseTime(createdAt)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *insightsRepository) ListChurnRisk(ctx context.Context) ([]model.ChurnRiskCustomer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, risk_score, reason, ltv_at_risk, last_purchase_days, created_at
		FROM churn_risk_customers ORDER BY risk_score DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []model.ChurnRiskCustomer
	for rows.Next() {
		var c model.ChurnRiskCustomer
		var ltv, createdAt string
		if err := rows.Scan(&c.ID, &c.CustomerName, &c.RiskScore, &c.Reason, &ltv, &c.LastPurchaseDays, &createdAt); err != nil {
			return nil, err
		}
		c.LTVAtRisk = parseDecimal(ltv)
		c.CreatedAt, _ = parseTime(createdAt)
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *insightsRepository) ListSegments(ctx context.Context) ([]model.CustomerSegment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, segment_name, customer_count, revenue, growth_rate, characteristics, created_at
		FROM customer_segments ORDER BY revenue DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var segments []model.CustomerSegment
	for rows.Next() {
		var s model.CustomerSegment
		var revenue, createdAt string
		if err := rows.Scan(&s.ID, &s.SegmentName, &s.CustomerCount, &revenue, &s.GrowthRate, &s.Characteristics, &createdAt); err != nil {
			return nil, err
		}
		s.Revenue = parseDecimal(revenue)
		s.CreatedAt, _ = parseTime(createdAt)
		segments = append(segments, s)
	}
	return segments, rows.Err()
}

func (r *insightsRepository) ListAttribution(ctx context.Context) ([]model.AttributionChannel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, channel_name, revenue, roi, orders_count, created_at
		FROM attribution_channels ORDER BY CAST(revenue AS REAL) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []model.AttributionChannel
	for rows.Next() {
		var c model.AttributionChannel
		var revenue, createdAt string
		if err := rows.Scan(&c.ID, &c.ChannelName, &revenue, &c.ROI, &c.Orders, &createdAt); err != nil {
			return nil, err
		}
		c.Revenue = parseDecimal(revenue)
		c.CreatedAt, _ = parseTime(createdAt)
		channels = append(channels, c)
	}
	return channels, rows.Err()
}

func (r *insightsRepository) ListAlerts(ctx context.Context) ([]model.AnomalyAlert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, alert_type, severity, message, timestamp, created_at
		FROM anomaly_alerts ORDER BY timestamp DESC LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []model.AnomalyAlert
	for rows.Next() {
		var a model.AnomalyAlert
		var timestamp, createdAt string
		if err := rows.Scan(&a.ID, &a.AlertType, &a.Severity, &a.Message, &timestamp, &createdAt); err != nil {
			return nil, err
		}
		a.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
		a.CreatedAt, _ = parseTime(createdAt)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
