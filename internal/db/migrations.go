package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS revenue_data (
  id INTEGER PRIMARY KEY,
  date TEXT NOT NULL UNIQUE,
  day_of_week TEXT NOT NULL,
  revenue TEXT NOT NULL,
  transactions INTEGER NOT NULL,
  conversion_rate REAL NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_revenue_data_date ON revenue_data(date);

CREATE TABLE IF NOT EXISTS uploaded_files (
  id INTEGER PRIMARY KEY,
  filename TEXT NOT NULL,
  storage_path TEXT NOT NULL,
  file_type TEXT NOT NULL,
  upload_date TEXT NOT NULL,
  processed INTEGER NOT NULL DEFAULT 0,
  row_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_uploaded_files_upload_date ON uploaded_files(upload_date);

CREATE TABLE IF NOT EXISTS forecast_data (
  id INTEGER PRIMARY KEY,
  date TEXT NOT NULL,
  current_revenue TEXT,
  forecast_revenue TEXT NOT NULL,
  lower_bound TEXT NOT NULL,
  upper_bound TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_forecast_data_date ON forecast_data(date);

CREATE TABLE IF NOT EXISTS inventory_items (
  id INTEGER PRIMARY KEY,
  product_name TEXT NOT NULL,
  current_stock INTEGER NOT NULL,
  optimal_stock INTEGER NOT NULL,
  days_supply INTEGER NOT NULL,
  reorder_point INTEGER NOT NULL,
  status TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pricing_recommendations (
  id INTEGER PRIMARY KEY,
  product_name TEXT NOT NULL,
  current_price TEXT NOT NULL,
  recommended_price TEXT NOT NULL,
  expected_impact REAL NOT NULL,
  reason TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS churn_risk_customers (
  id INTEGER PRIMARY KEY,
  customer_name TEXT NOT NULL,
  risk_score REAL NOT NULL,
  reason TEXT NOT NULL,
  ltv_at_risk TEXT NOT NULL,
  last_purchase_days INTEGER NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS customer_segments (
  id INTEGER PRIMARY KEY,
  segment_name TEXT NOT NULL,
  customer_count INTEGER NOT NULL,
  revenue TEXT NOT NULL,
  growth_rate REAL NOT NULL,
  characteristics TEXT NOT NULL DEFAULT '{}',
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attribution_channels (
  id INTEGER PRIMARY KEY,
  channel_name TEXT NOT NULL,
  revenue TEXT NOT NULL,
  roi REAL NOT NULL,
  orders_count INTEGER NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS anomaly_alerts (
  id INTEGER PRIMARY KEY,
  alert_type TEXT NOT NULL,
  severity TEXT NOT NULL,
  message TEXT NOT NULL,
  timestamp TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_anomaly_alerts_timestamp ON anomaly_alerts(timestamp);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add storage_path to uploaded_files created before it existed
	exists, err := hasColumn(db, "uploaded_files", "storage_path")
	if err != nil {
		return fmt.Errorf("check storage_path column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE uploaded_files ADD COLUMN storage_path TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("add storage_path column: %w", err)
		}
	}

	// Migration 2: Add conversion_rate to revenue_data
	exists, err = hasColumn(db, "revenue_data", "conversion_rate")
	if err != nil {
		return fmt.Errorf("check conversion_rate column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE revenue_data ADD COLUMN conversion_rate REAL NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add conversion_rate column: %w", err)
		}
	}

	// Migration 3: Enforce one summary row per date on databases written
	// before the unique constraint landed.
	if _, err := db.Exec(`
		DELETE FROM revenue_data WHERE id NOT IN (
			SELECT MAX(id) FROM revenue_data GROUP BY date
		)
	`); err != nil {
		return fmt.Errorf("dedupe revenue_data by date: %w", err)
	}
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_revenue_data_date_unique ON revenue_data(date)`); err != nil {
		return fmt.Errorf("create idx_revenue_data_date_unique: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
