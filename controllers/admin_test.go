package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFetchDashboardStats(t *testing.T) {
	t.Run("merges the four counters", func(t *testing.T) {
		// 3 orders worth 10, 20 and 30, one of them pending
		src := new(MockStatsSource)
		src.On("CountOrders", mock.Anything).Return(int64(3), nil)
		src.On("TotalRevenue", mock.Anything).Return(60.0, nil)
		src.On("CountUsers", mock.Anything).Return(int64(5), nil)
		src.On("CountPendingOrders", mock.Anything).Return(int64(1), nil)

		stats, err := fetchDashboardStats(context.Background(), src)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalOrders)
		assert.Equal(t, 60.0, stats.TotalRevenue)
		assert.Equal(t, int64(5), stats.TotalUsers)
		assert.Equal(t, int64(1), stats.PendingOrders)
		src.AssertExpectations(t)
	})

	t.Run("any failing query fails the whole fetch", func(t *testing.T) {
		src := new(MockStatsSource)
		src.On("CountOrders", mock.Anything).Return(int64(0), errors.New("orders collection unavailable")).Maybe()
		src.On("TotalRevenue", mock.Anything).Return(0.0, nil).Maybe()
		src.On("CountUsers", mock.Anything).Return(int64(0), nil).Maybe()
		src.On("CountPendingOrders", mock.Anything).Return(int64(0), nil).Maybe()

		stats, err := fetchDashboardStats(context.Background(), src)

		assert.Error(t, err)
		assert.Nil(t, stats)
	})

	t.Run("empty database yields zeroes", func(t *testing.T) {
		src := new(MockStatsSource)
		src.On("CountOrders", mock.Anything).Return(int64(0), nil)
		src.On("TotalRevenue", mock.Anything).Return(0.0, nil)
		src.On("CountUsers", mock.Anything).Return(int64(0), nil)
		src.On("CountPendingOrders", mock.Anything).Return(int64(0), nil)

		stats, err := fetchDashboardStats(context.Background(), src)

		assert.NoError(t, err)
		assert.Equal(t, &DashboardStats{}, stats)
	})
}
