package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
)

func TestGetStatsRateBoardKeepsEveryPurity(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.revenue = 125000
	orderRepo.due = 4200
	orderRepo.count = 7

	rateRepo := &fakeRateRepo{rates: []entity.MetalRate{
		{MaterialName: "Gold", MaterialType: "24K", PricePerGram: 6000},
		{MaterialName: "Gold", MaterialType: "22K", PricePerGram: 5500},
		{MaterialName: "Silver", MaterialType: "925", PricePerGram: 90},
	}}

	svc := NewDashboardService(orderRepo, &fakeProductRepo{}, rateRepo)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 125000.0, stats.TodayRevenue)
	assert.Equal(t, 4200.0, stats.TodayDue)
	assert.Equal(t, int64(7), stats.TodayOrders)

	// Both gold purities survive on the board; same-name rows must not
	// overwrite each other.
	require.Len(t, stats.GoldRates, 3)
	assert.Equal(t, 6000.0, stats.GoldRates["Gold 24K"])
	assert.Equal(t, 5500.0, stats.GoldRates["Gold 22K"])
	assert.Equal(t, 90.0, stats.GoldRates["Silver 925"])
}
