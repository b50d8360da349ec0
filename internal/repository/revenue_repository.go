//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"kaapi/backend/internal/model"
	"kaapi/backend/pkg/snowflake"
)

// RevenueRepository stores daily revenue summaries keyed by calendar date.
type RevenueRepository interface {
	// UpsertByDate inserts the summary, or fully replaces the non-key
	// fields of the existing row for the same date.
	UpsertByDate(ctx context.Context, summary model.DailyRevenueSummary) (model.DailyRevenueSummary, error)
	// Create inserts a new summary and fails on a duplicate date.
	Create(ctx context.Context, summary model.DailyRevenueSummary) (model.DailyRevenueSummary, error)
	GetByDate(ctx context.Context, date string) (*model.DailyRevenueSummary, error)
	// List returns all summaries ordered by date ascending.
	List(ctx context.Context) ([]model.DailyRevenueSummary, error)
}

type revenueRepository struct {
	db *sql.DB
}

func NewRevenueRepository(db *sql.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) UpsertByDate(ctx context.Context, summary model.DailyRevenueSummary) (model.DailyRevenueSummary, error) {
	summary.ID = snowflake.NextID()
	summary.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO revenue_data (id, date, day_of_week, revenue, transactions, conversion_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			day_of_week = excluded.day_of_week,
			revenue = excluded.revenue,
			transactions = excluded.transactions,
			conversion_rate = excluded.conversion_rate
	`, summary.ID, summary.Date, summary.DayOfWeek, formatDecimal(summary.Revenue),
		summary.Transactions, summary.ConversionRate, formatTime(summary.CreatedAt))
	if err != nil {
		return model.DailyRevenueSummary{}, err
	}

	stored, err := r.GetByDate(ctx, summary.Date)
	if err != nil {
		return model.DailyRevenueSummary{}, err
	}
	return *stored, nil
}

func (r *revenueRepository) Create(ctx context.Context, summary model.DailyRevenueSummary) (model.DailyRevenueSummary, error) {
	summary.ID = snowflake.NextID()
	summary.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO revenue_data (id, date, day_of_week, revenue, transactions, conversion_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, summary.ID, summary.Date, summary.DayOfWeek, formatDecimal(summary.Revenue),
		summary.Transactions, summary.ConversionRate, formatTime(summary.CreatedAt))
	if err != nil {
		return model.DailyRevenueSummary{}, err
	}
	return summary, nil
}

func (r *revenueRepository) GetByDate(ctx context.Context, date string) (*model.DailyRevenueSummary, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, day_of_week, revenue, transactions, conversion_rate, created_at
		FROM revenue_data WHERE date = ?
	`, date)

	summary, err := scanSummary(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *revenueRepository) List(ctx context.Context) ([]model.DailyRevenueSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, day_of_week, revenue, transactions, conversion_rate, created_at
		FROM revenue_data ORDER BY date ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.DailyRevenueSummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSummary(scanner rowScanner) (model.DailyRevenueSummary, error) {
	var s model.DailyRevenueSummary
	var revenue, createdAt string
	if err := scanner.Scan(&s.ID, &s.Date, &s.DayOfWeek, &revenue, &s.Transactions, &s.ConversionRate, &createdAt); err != nil {
		return model.DailyRevenueSummary{}, err
	}
	s.Revenue = parseDecimal(revenue)
	s.CreatedAt, _ = parseTime(createdAt)
	return s, nil
}
