package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/lbarreto/stockpilot-backend/pkg/errors"
)

// Stats is the dashboard summary: product counts plus revenue and profit over
// three rolling windows. Daily covers the current calendar day; weekly and
// monthly are trailing 7- and 30-day windows, not calendar weeks or months.
type Stats struct {
	TotalProducts int64           `json:"total_products"`
	LowStockCount int64           `json:"low_stock_count"`
	DailySales    decimal.Decimal `json:"daily_sales"`
	DailyProfit   decimal.Decimal `json:"daily_profit"`
	WeeklySales   decimal.Decimal `json:"weekly_sales"`
	WeeklyProfit  decimal.Decimal `json:"weekly_profit"`
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`
}

// Service exposes the dashboard aggregator.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// NewService constructs a dashboard service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// Stats computes the dashboard summary over active rows only. Trashed
// products and sales contribute nothing until restored.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats := &Stats{}

	var err error
	if stats.TotalProducts, err = s.repo.CountActiveProducts(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "counting products")
	}
	if stats.LowStockCount, err = s.repo.CountLowStockProducts(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "counting low-stock products")
	}

	daily, err := s.repo.TotalsSince(ctx, dayStart)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "summing daily sales")
	}
	weekly, err := s.repo.TotalsSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "summing weekly sales")
	}
	monthly, err := s.repo.TotalsSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "summing monthly sales")
	}

	stats.DailySales, stats.DailyProfit = daily.Revenue, daily.Profit
	stats.WeeklySales, stats.WeeklyProfit = weekly.Revenue, weekly.Profit
	stats.MonthlySales, stats.MonthlyProfit = monthly.Revenue, monthly.Profit
	return stats, nil
}
