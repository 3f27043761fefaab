package trade

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pedidos/backend/internal/domain/trade"
)

func feedOrders(t *testing.T, n int) []trade.Order {
	t.Helper()
	orders := make([]trade.Order, n)
	for i := 0; i < n; i++ {
		item, err := trade.NewOrderItem("c1", "Maria Lopez", trade.CategoryShoe, "25",
			decimal.NewFromInt(40), decimal.NewFromInt(50), "")
		require.NoError(t, err)
		order, err := trade.NewOrder(trade.FormatFolio(i), []trade.OrderItem{item})
		require.NoError(t, err)
		order.ID = fmt.Sprintf("ord-%d", i)
		orders[i] = *order
	}
	return orders
}

func loadedFeed(t *testing.T, n int) *FeedManager {
	t.Helper()
	repo := new(MockOrderRepository)
	repo.On("FindAll", mock.Anything, false).Return(feedOrders(t, n), nil)

	manager := NewFeedManager(repo, 5, 5)
	_, err := manager.Load(context.Background(), "operator-1", true)
	require.NoError(t, err)
	return manager
}

func TestFeedManager_Load(t *testing.T) {
	t.Run("shows the first window", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("FindAll", mock.Anything, false).Return(feedOrders(t, 12), nil)

		manager := NewFeedManager(repo, 5, 5)
		resp, err := manager.Load(context.Background(), "operator-1", false)

		require.NoError(t, err)
		assert.Len(t, resp.Orders, 5)
		assert.Equal(t, 12, resp.Total)
		assert.True(t, resp.HasMore)
		assert.Equal(t, "ord-0", resp.Orders[0].ID)
	})

	t.Run("an existing session is reused unless forced", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("FindAll", mock.Anything, false).Return(feedOrders(t, 12), nil)

		manager := NewFeedManager(repo, 5, 5)
		_, err := manager.Load(context.Background(), "operator-1", false)
		require.NoError(t, err)
		_, err = manager.RevealMore("operator-1")
		require.NoError(t, err)

		// non-forced load keeps the cache and the revealed window
		resp, err := manager.Load(context.Background(), "operator-1", false)
		require.NoError(t, err)
		assert.Equal(t, 10, resp.Visible)
		repo.AssertNumberOfCalls(t, "FindAll", 1)

		// forced load refetches and resets the window
		resp, err = manager.Load(context.Background(), "operator-1", true)
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Visible)
		repo.AssertNumberOfCalls(t, "FindAll", 2)
	})

	t.Run("short listings are fully visible", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("FindAll", mock.Anything, false).Return(feedOrders(t, 3), nil)

		manager := NewFeedManager(repo, 5, 5)
		resp, err := manager.Load(context.Background(), "operator-1", false)

		require.NoError(t, err)
		assert.Len(t, resp.Orders, 3)
		assert.False(t, resp.HasMore)
	})

	t.Run("sessions are independent per operator", func(t *testing.T) {
		manager := loadedFeed(t, 12)

		_, err := manager.Current("operator-2")
		assert.ErrorIs(t, err, ErrNoFeed)
	})
}

func TestFeedManager_RevealMore(t *testing.T) {
	t.Run("grows by one step until exhausted", func(t *testing.T) {
		manager := loadedFeed(t, 12)

		resp, err := manager.RevealMore("operator-1")
		require.NoError(t, err)
		assert.Equal(t, 10, resp.Visible)
		assert.True(t, resp.HasMore)

		resp, err = manager.RevealMore("operator-1")
		require.NoError(t, err)
		assert.Equal(t, 12, resp.Visible)
		assert.False(t, resp.HasMore)

		// revealing past the end is a no-op
		resp, err = manager.RevealMore("operator-1")
		require.NoError(t, err)
		assert.Equal(t, 12, resp.Visible)
	})

	t.Run("requires a loaded session", func(t *testing.T) {
		manager := NewFeedManager(new(MockOrderRepository), 5, 5)
		_, err := manager.RevealMore("operator-1")
		assert.ErrorIs(t, err, ErrNoFeed)
	})
}

func TestFeedManager_ApplyUpdate(t *testing.T) {
	t.Run("patches a cached order in place", func(t *testing.T) {
		manager := loadedFeed(t, 12)

		manager.ApplyUpdate("operator-1", OrderResponse{ID: "ord-2", Folio: "PED-XXXX"})

		resp, err := manager.Current("operator-1")
		require.NoError(t, err)
		assert.Equal(t, "PED-XXXX", resp.Orders[2].Folio)
		assert.Equal(t, 12, resp.Total)
	})

	t.Run("unknown orders are prepended as new", func(t *testing.T) {
		manager := loadedFeed(t, 12)

		manager.ApplyUpdate("operator-1", OrderResponse{ID: "ord-new"})

		resp, err := manager.Current("operator-1")
		require.NoError(t, err)
		assert.Equal(t, 13, resp.Total)
		assert.Equal(t, "ord-new", resp.Orders[0].ID)
		assert.Equal(t, 6, resp.Visible)
	})

	t.Run("ignores operators without a session", func(t *testing.T) {
		manager := loadedFeed(t, 12)
		manager.ApplyUpdate("operator-2", OrderResponse{ID: "ord-1"})

		_, err := manager.Current("operator-2")
		assert.ErrorIs(t, err, ErrNoFeed)
	})
}

func TestFeedManager_ApplyDelete(t *testing.T) {
	manager := loadedFeed(t, 6)

	manager.ApplyDelete("operator-1", "ord-1")

	resp, err := manager.Current("operator-1")
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Total)
	for _, o := range resp.Orders {
		assert.NotEqual(t, "ord-1", o.ID)
	}
}

func TestFeedManager_Evict(t *testing.T) {
	manager := loadedFeed(t, 6)

	manager.Evict("operator-1")

	_, err := manager.Current("operator-1")
	assert.ErrorIs(t, err, ErrNoFeed)
}
