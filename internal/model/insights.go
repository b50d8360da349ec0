package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// The insight tables below back the read-only dashboard widgets. They are
// seeded with sample data and refreshed upstream; this service only reads them.

type ForecastPoint struct {
	ID              int64
	Date            string // 2006-01-02
	CurrentRevenue  *decimal.Decimal
	ForecastRevenue decimal.Decimal
	LowerBound      decimal.Decimal
	UpperBound      decimal.Decimal
	CreatedAt       time.Time
}

type InventoryItem struct {
	ID           int64
	ProductName  string
	CurrentStock int64
	OptimalStock int64
	DaysSupply   int64
	ReorderPoint int64
	Status       string // critical | low | good
	CreatedAt    time.Time
}

type PricingRecommendation struct {
	ID               int64
	ProductName      string
	CurrentPrice     decimal.Decimal
	RecommendedPrice decimal.Decimal
	ExpectedImpact   float64
	Reason           string
	CreatedAt        time.Time
}

type ChurnRiskCustomer struct {
	ID               int64
	CustomerName     string
	RiskScore        float64
	Reason           string
	LTVAtRisk        decimal.Decimal
	LastPurchaseDays int64
	CreatedAt        time.Time
}

type CustomerSegment struct {
	ID              int64
	SegmentName     string
	CustomerCount   int64
	Revenue         decimal.Decimal
	GrowthRate      float64
	Characteristics string // JSON object, stored verbatim
	CreatedAt       time.Time
}

type AttributionChannel struct {
	ID          int64
	ChannelName string
	Revenue     decimal.Decimal
	ROI         float64
	Orders      int64
	CreatedAt   time.Time
}

type AnomalyAlert struct {
	ID        int64
	AlertType string
	Severity  string // critical | warning | info
	Message   string
	Timestamp time.Time
	CreatedAt time.Time
}
