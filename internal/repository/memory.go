package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkcho/brewstation/internal/models"
)

// MemoryOrderRepo is the device-local order storage variant. Orders are
// kept in insertion order; the map is an index by order id. The mutex
// guards the count-and-insert pair, so id assignment stays sequential
// under concurrent creations.
type MemoryOrderRepo struct {
	mu   sync.RWMutex
	byID map[string]*models.Order
	log  []*models.Order
}

// NewMemoryOrderRepo creates new MemoryOrderRepo instance
func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{byID: make(map[string]*models.Order)}
}

// CreateOrder assigns the next sequential order id and appends the order
func (r *MemoryOrderRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	stored.ID = uint64(len(r.log) + 1)
	stored.OrderID = fmt.Sprintf("%04d", len(r.log)+1)
	stored.CreatedAt = time.Now()

	r.byID[stored.OrderID] = &stored
	r.log = append(r.log, &stored)

	out := stored
	return &out, nil
}

// GetOrderByID returns order by order id
func (r *MemoryOrderRepo) GetOrderByID(_ context.Context, orderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[orderID]
	if !ok {
		return nil, models.ErrDataNotFound
	}

	out := *order
	return &out, nil
}

// GetOrdersByUserID returns user orders, newest first
func (r *MemoryOrderRepo) GetOrdersByUserID(_ context.Context, userID uint64) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []models.Order{}
	for i := len(r.log) - 1; i >= 0; i-- {
		if r.log[i].UserID == userID {
			orders = append(orders, *r.log[i])
		}
	}

	return orders, nil
}

// GetOrders returns all orders, newest first
func (r *MemoryOrderRepo) GetOrders(_ context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.log))
	for i := len(r.log) - 1; i >= 0; i-- {
		orders = append(orders, *r.log[i])
	}

	return orders, nil
}

// UpdateOrderStatus overwrites order status
func (r *MemoryOrderRepo) UpdateOrderStatus(_ context.Context, orderID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[orderID]
	if !ok {
		return models.ErrDataNotFound
	}

	order.Status = status
	return nil
}

// MemoryUserRepo is the device-local user storage variant
type MemoryUserRepo struct {
	mu     sync.RWMutex
	byName map[string]*models.User
	nextID uint64
}

// NewMemoryUserRepo creates new MemoryUserRepo instance
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{byName: make(map[string]*models.User)}
}

// CreateUser stores new user
func (r *MemoryUserRepo) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return nil, models.ErrConflictData
	}

	r.nextID++
	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.byName[stored.Username] = &stored

	out := stored
	return &out, nil
}

// GetUserByUsername returns user by username
func (r *MemoryUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[username]
	if !ok {
		return nil, models.ErrDataNotFound
	}

	out := *user
	return &out, nil
}
