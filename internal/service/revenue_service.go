//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"kaapi/backend/internal/ingest"
	"kaapi/backend/internal/model"
	"kaapi/backend/internal/repository"
)

const (
	maxDayOfWeekLen = 10
	maxTransactions = 10_000_000
)

var maxRevenue = decimal.NewFromInt(1_000_000_000)

// RevenueInput is a manually submitted daily summary.
type RevenueInput struct {
	Date           string
	DayOfWeek      string
	Revenue        decimal.Decimal
	Transactions   int64
	ConversionRate float64
}

// RevenueService exposes the daily revenue series.
type RevenueService interface {
	// List returns all summaries ordered by date ascending.
	List(ctx context.Context) ([]model.DailyRevenueSummary, error)
	// Create inserts a summary for a date that has none yet.
	Create(ctx context.Context, in RevenueInput) (*model.DailyRevenueSummary, error)
}

type revenueService struct {
	revenue repository.RevenueRepository
}

func NewRevenueService(revenue repository.RevenueRepository) RevenueService {
	return &revenueService{revenue: revenue}
}

func (s *revenueService) List(ctx context.Context) ([]model.DailyRevenueSummary, error) {
	return s.revenue.List(ctx)
}

func (s *revenueService) Create(ctx context.Context, in RevenueInput) (*model.DailyRevenueSummary, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalid)
	}
	if len(in.DayOfWeek) > maxDayOfWeekLen {
		return nil, fmt.Errorf("%w: day_of_week too long", ErrInvalid)
	}
	if in.Revenue.IsNegative() || in.Revenue.GreaterThan(maxRevenue) {
		return nil, fmt.Errorf("%w: revenue out of range", ErrInvalid)
	}
	if in.Transactions < 0 || in.Transactions > maxTransactions {
		return nil, fmt.Errorf("%w: transactions out of range", ErrInvalid)
	}
	if in.ConversionRate < 0 || in.ConversionRate > 100 {
		return nil, fmt.Errorf("%w: conversion_rate out of range", ErrInvalid)
	}

	day := in.DayOfWeek
	if day == "" {
		day = ingest.DayName(date)
	}

	existing, err := s.revenue.GetByDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: summary for %s already exists", ErrConflict, in.Date)
	}

	created, err := s.revenue.Create(ctx, model.DailyRevenueSummary{
		Date:           in.Date,
		DayOfWeek:      day,
		Revenue:        in.Revenue,
		Transactions:   in.Transactions,
		ConversionRate: in.ConversionRate,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
