package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/mkcho/brewstation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(name string, userID uint64) *models.Order {
	return &models.Order{
		UserID:   userID,
		Sugar:    "low",
		Coffee:   "high",
		Water:    "none",
		IcedTea:  "none",
		GreenTea: "none",
		Name:     name,
		Room:     "201",
		Status:   models.OrderStatusPreparing,
	}
}

func TestMemoryOrderRepo_SequentialIDs(t *testing.T) {
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		order, err := repo.CreateOrder(ctx, testOrder("Alice", 1))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%04d", i), order.OrderID)
	}
}

func TestMemoryOrderRepo_ConcurrentCreatesAssignDistinctIDs(t *testing.T) {
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateOrder(ctx, testOrder("Alice", 1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	orders, err := repo.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, n)

	// exactly n distinct ids, no gaps, no duplicates
	seen := map[string]bool{}
	for _, order := range orders {
		seen[order.OrderID] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, seen[fmt.Sprintf("%04d", i)], "missing id %04d", i)
	}
}

func TestMemoryOrderRepo_ListNewestFirst(t *testing.T) {
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.CreateOrder(ctx, testOrder(name, 1))
		require.NoError(t, err)
	}

	orders, err := repo.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "third", orders[0].Name)
	assert.Equal(t, "second", orders[1].Name)
	assert.Equal(t, "first", orders[2].Name)
}

func TestMemoryOrderRepo_ListByUserFilters(t *testing.T) {
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	_, err := repo.CreateOrder(ctx, testOrder("Alice", 1))
	require.NoError(t, err)
	_, err = repo.CreateOrder(ctx, testOrder("Bob", 2))
	require.NoError(t, err)
	_, err = repo.CreateOrder(ctx, testOrder("Alice", 1))
	require.NoError(t, err)

	orders, err := repo.GetOrdersByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// newest first
	assert.Equal(t, "0003", orders[0].OrderID)
	assert.Equal(t, "0001", orders[1].OrderID)
}

func TestMemoryOrderRepo_GetByID(t *testing.T) {
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	created, err := repo.CreateOrder(ctx, testOrder("Alice", 1))
	require.NoError(t, err)

	order, err := repo.GetOrderByID(ctx, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", order.Name)

	_, err = repo.GetOrderByID(ctx, "9999")
	assert.ErrorIs(t, err, models.ErrDataNotFound)
}

func TestMemoryOrderRepo_UpdateStatus(t *testing.T) {
	repo := NewMemoryOrderRepo()
	ctx := context.Background()

	created, err := repo.CreateOrder(ctx, testOrder("Alice", 1))
	require.NoError(t, err)

	err = repo.UpdateOrderStatus(ctx, created.OrderID, models.OrderStatusDelivering)
	require.NoError(t, err)

	order, err := repo.GetOrderByID(ctx, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivering, order.Status)

	err = repo.UpdateOrderStatus(ctx, "9999", models.OrderStatusDelivering)
	assert.ErrorIs(t, err, models.ErrDataNotFound)
}

func TestMemoryUserRepo(t *testing.T) {
	repo := NewMemoryUserRepo()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.ID)

	_, err = repo.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, models.ErrConflictData)

	user, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)

	_, err = repo.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, models.ErrDataNotFound)
}
