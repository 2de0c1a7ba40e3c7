package service

import (
	"context"
	"fmt"

	"github.com/mkcho/brewstation/internal/models"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder assigns next sequential order id and stores the order
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by order id
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)
	// GetOrdersByUserID returns user orders, newest first
	GetOrdersByUserID(ctx context.Context, userID uint64) ([]models.Order, error)
	// GetOrders returns all orders, newest first
	GetOrders(ctx context.Context) ([]models.Order, error)
	// UpdateOrderStatus overwrites order status
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
}

// OrderService implements OrderService interface
type OrderService struct {
	repo OrderRepository
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create validates the draft and stores new order with initial status
func (os *OrderService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := validateDraft(order); err != nil {
		return nil, err
	}

	order.Status = models.OrderStatusPreparing

	return os.repo.CreateOrder(ctx, order)
}

// GetOrderByID returns order by order id
func (os *OrderService) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	return os.repo.GetOrderByID(ctx, orderID)
}

// ListUserOrders returns list of user orders, newest first
func (os *OrderService) ListUserOrders(ctx context.Context, userID uint64) ([]models.Order, error) {
	return os.repo.GetOrdersByUserID(ctx, userID)
}

// ListAllOrders returns list of all orders, newest first
func (os *OrderService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return os.repo.GetOrders(ctx)
}

// UpdateStatus overwrites order status. Any member of the closed status
// set may replace any other; values outside the set are rejected before
// storage is touched.
func (os *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, models.ErrInvalidOrderStatus
	}

	if err := os.repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	return os.repo.GetOrderByID(ctx, orderID)
}

// validateDraft checks that all required order fields are present
func validateDraft(order *models.Order) error {
	fields := map[string]string{
		"sugar":     order.Sugar,
		"coffee":    order.Coffee,
		"water":     order.Water,
		"iced_tea":  order.IcedTea,
		"green_tea": order.GreenTea,
		"name":      order.Name,
		"room":      order.Room,
	}

	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%w: %s", models.ErrEmptyOrderField, name)
		}
	}

	return nil
}
