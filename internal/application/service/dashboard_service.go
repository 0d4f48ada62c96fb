package service

import (
	"context"
	"time"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
)

// DashboardService aggregates the numbers the terminal's home screen shows
type DashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	rateRepo    repository.MetalRateRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	rateRepo repository.MetalRateRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		rateRepo:    rateRepo,
	}
}

// DashboardStats is the home-screen summary
type DashboardStats struct {
	TodayRevenue  float64            `json:"today_revenue"`
	TodayDue      float64            `json:"today_due"`
	TodayOrders   int64              `json:"today_orders"`
	LowStockCount int                `json:"low_stock_count"`
	GoldRates     map[string]float64 `json:"gold_rates"`
}

// GetStats computes today's sales totals, the low-stock count and the
// current rate board
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24 * time.Hour)

	revenue, due, count, err := s.orderRepo.SalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	// One rate row per (name, type) pair, so the board key carries both:
	// "Gold 22K" and "Gold 24K" are distinct entries.
	rateBoard := make(map[string]float64, len(rates))
	for _, rate := range rates {
		rateBoard[rate.MaterialName+" "+rate.MaterialType] = rate.PricePerGram
	}

	return &DashboardStats{
		TodayRevenue:  revenue,
		TodayDue:      due,
		TodayOrders:   count,
		LowStockCount: len(lowStock),
		GoldRates:     rateBoard,
	}, nil
}
