package db

import (
	"database/sql"
	"fmt"
	"time"

	"kaapi/backend/pkg/snowflake"
)

// SeedSampleData populates the insight tables with demo data when they are
// empty so a fresh install renders a full dashboard. Revenue and upload
// tables are never seeded; they only hold real ingested data.
func SeedSampleData(db *sql.DB) error {
	now := time.Now().UTC()
	nowStr := now.Format(time.RFC3339)

	seeds := []struct {
		table  string
		insert func() error
	}{
		{"customer_segments", func() error {
			rows := []struct {
				name            string
				count           int64
				revenue         string
				growth          float64
				characteristics string
			}{
				{"Loyal Commuters", 12, "15200.00", 18.0, `{"visit_frequency":"Daily","top_pick":"Latte","preferences":"Oat Milk"}`},
				{"Corporate Catering", 48, "28600.00", 34.0, `{"visit_frequency":"Weekly","top_pick":"Bulk Brew","preferences":"Whole Bean"}`},
				{"Weekend Explorers", 340, "8400.00", -8.0, `{"visit_frequency":"Monthly","top_pick":"Pour Over","preferences":"Manual Brew"}`},
				{"Laptop Nomads", 85, "12300.00", 45.0, `{"visit_frequency":"Daily","top_pick":"Cold Brew","preferences":"Fast WiFi"}`},
			}
			for _, r := range rows {
				if _, err := db.Exec(`
					INSERT INTO customer_segments (id, segment_name, customer_count, revenue, growth_rate, characteristics, created_at)
					VALUES (?, ?, ?, ?, ?, ?, ?)
				`, snowflake.NextID(), r.name, r.count, r.revenue, r.growth, r.characteristics, nowStr); err != nil {
					return err
				}
			}
			return nil
		}},
		{"churn_risk_customers", func() error {
			rows := []struct {
				name   string
				score  float64
				reason string
				ltv    string
				days   int64
			}{
				{"Jordan S.", 92, "Morning routine lapse, 45 days since last espresso", "450.00", 45},
				{"Alex P.", 78, "Subscription pause, shifted to work-from-home model", "182.00", 28},
				{"Riverside Office", 65, "Competitive proximity, new micro-roastery opened nearby", "3210.00", 21},
				{"Casey M.", 88, "App usage drop, loyalty reward redemption stalled", "89.00", 35},
			}
			for _, r := range rows {
				if _, err := db.Exec(`
					INSERT INTO churn_risk_customers (id, customer_name, risk_score, reason, ltv_at_risk, last_purchase_days, created_at)
					VALUES (?, ?, ?, ?, ?, ?, ?)
				`, snowflake.NextID(), r.name, r.score, r.reason, r.ltv, r.days, nowStr); err != nil {
					return err
				}
			}
			return nil
		}},
		{"inventory_items", func() error {
			rows := []struct {
				name                            string
				current, optimal, days, reorder int64
				status                          string
			}{
				{"Kaapi Heritage Beans", 45, 120, 8, 60, "critical"},
				{"Barista Oat Milk", 230, 200, 28, 100, "good"},
				{"Single Origin Ethiopia", 85, 150, 15, 75, "low"},
				{"Biodegradable Cups", 340, 250, 42, 125, "good"},
				{"Artisan Croissants", 22, 100, 5, 50, "critical"},
			}
			for _, r := range rows {
				if _, err := db.Exec(`
					INSERT INTO inventory_items (id, product_name, current_stock, optimal_stock, days_supply, reorder_point, status, created_at)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				`, snowflake.NextID(), r.name, r.current, r.optimal, r.days, r.reorder, r.status, nowStr); err != nil {
					return err
				}
			}
			return nil
		}},
		{"pricing_recommendations", func() error {
			rows := []struct {
				name                 string
				current, recommended string
				impact               float64
				reason               string
			}{
				{"Kaapi Heritage Beans", "18.99", "21.99", 8.4, "High recurring demand. Inventory turnover exceeds 70%/month."},
				{"Barista Oat Milk", "5.99", "5.49", 12.1, "Price sensitive segment indicator. Surplus inventory reduction."},
				{"Single Origin Ethiopia", "24.99", "25.99", 5.2, "Niche exclusivity. Market supports premium specialty increase."},
				{"Artisan Croissants", "4.50", "4.25", -3.5, "Slow morning movement. Tactical reduction to clear same-day stock."},
			}
			for _, r := range rows {
				if _, err := db.Exec(`
					INSERT INTO pricing_recommendations (id, product_name, current_price, recommended_price, expected_impact, reason, created_at)
					VALUES (?, ?, ?, ?, ?, ?, ?)
				`, snowflake.NextID(), r.name, r.current, r.recommended, r.impact, r.reason, nowStr); err != nil {
					return err
				}
			}
			return nil
		}},
		{"attribution_channels", func() error {
			rows := []struct {
				name    string
				revenue string
				roi     float64
				orders  int64
			}{
				{"Walk-in", "28400.00", 450.0, 342},
				{"Newsletter", "24200.00", 850.0, 289},
				{"Instagram", "18600.00", 320.0, 215},
				{"Word of Mouth", "16200.00", 1200.0, 178},
				{"Local SEO", "14500.00", 280.0, 156},
			}
			for _, r := range rows {
				if _, err := db.Exec(`
					INSERT INTO attribution_channels (id, channel_name, revenue, roi, orders_count, created_at)
					VALUES (?, ?, ?, ?, ?, ?)
				`, snowflake.NextID(), r.name, r.revenue, r.roi, r.orders, nowStr); err != nil {
					return err
				}
			}
			return nil
		}},
		{"anomaly_alerts", func() error {
			rows := []struct {
				alertType string
				severity  string
				message   string
				age       time.Duration
			}{
				{"Midnight Rush Spike", "critical", "Unusual night-time volume detected (+340% vs historic average)", 2 * time.Hour},
				{"Morning Conversion Dip", "warning", "Checkout conversion rate dropped 15% during peak 8AM window", time.Hour},
				{"Heritage Bean Alert", "info", "Heritage Beans below reorder threshold. Auto-replenish triggered.", 30 * time.Minute},
			}
			for _, r := range rows {
				if _, err := db.Exec(`
					INSERT INTO anomaly_alerts (id, alert_type, severity, message, timestamp, created_at)
					VALUES (?, ?, ?, ?, ?, ?)
				`, snowflake.NextID(), r.alertType, r.severity, r.message, now.Add(-r.age).Format(time.RFC3339), nowStr); err != nil {
					return err
				}
			}
			return nil
		}},
		{"forecast_data", func() error {
			base := 2800.0
			for i := 0; i < 14; i++ {
				date := now.AddDate(0, 0, i).Format("2006-01-02")
				forecast := base + float64(i)*120
				if _, err := db.Exec(`
					INSERT INTO forecast_data (id, date, current_revenue, forecast_revenue, lower_bound, upper_bound, created_at)
					VALUES (?, ?, NULL, ?, ?, ?, ?)
				`, snowflake.NextID(), date,
					fmt.Sprintf("%.2f", forecast),
					fmt.Sprintf("%.2f", forecast*0.85),
					fmt.Sprintf("%.2f", forecast*1.15),
					nowStr); err != nil {
					return err
				}
			}
			return nil
		}},
	}

	for _, seed := range seeds {
		var count int
		if err := db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, seed.table)).Scan(&count); err != nil {
			return fmt.Errorf("count %s: %w", seed.table, err)
		}
		if count > 0 {
			continue
		}
		if err := seed.insert(); err != nil {
			return fmt.Errorf("seed %s: %w", seed.table, err)
		}
	}

	return nil
}
