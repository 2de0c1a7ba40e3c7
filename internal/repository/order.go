package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mkcho/brewstation/internal/models"
	"github.com/mkcho/brewstation/internal/repository/postgres"
)

const (
	pgErrUniqueViolationCode = "23505"

	// application-scoped advisory lock key for order id assignment
	orderSeqLockKey = 7741

	advisoryLockQuery = `SELECT pg_advisory_xact_lock($1)`

	countOrdersQuery = `SELECT count(*) FROM orders`

	insertOrderQuery = `
						INSERT INTO orders (order_id, sugar, coffee, water, iced_tea, green_tea, name, room, status, user_id)
						values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
						RETURNING id, created_at
`
	selectOrderByIDQuery = `
						SELECT id, order_id, sugar, coffee, water, iced_tea, green_tea, name, room, status, user_id, created_at FROM orders
						WHERE order_id = $1
`
	selectOrdersByUserIDQuery = `
						SELECT id, order_id, sugar, coffee, water, iced_tea, green_tea, name, room, status, user_id, created_at FROM orders
						WHERE user_id = $1
						ORDER BY created_at DESC, id DESC
`
	selectOrdersQuery = `
						SELECT id, order_id, sugar, coffee, water, iced_tea, green_tea, name, room, status, user_id, created_at FROM orders
						ORDER BY created_at DESC, id DESC
`
	updateOrderStatusQuery = `
						UPDATE orders
						SET status = $1
						WHERE order_id = $2
`
)

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder assigns the next sequential order id and inserts the order.
// The count read and the insert run in one transaction under an advisory
// lock, so concurrent creations never observe the same count.
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, advisoryLockQuery, orderSeqLockKey); err != nil {
		return nil, err
	}

	var count int64
	if err := tx.QueryRow(ctx, countOrdersQuery).Scan(&count); err != nil {
		return nil, err
	}

	order.OrderID = fmt.Sprintf("%04d", count+1)

	var userID *int64
	if order.UserID != 0 {
		id := int64(order.UserID)
		userID = &id
	}

	err = tx.QueryRow(ctx, insertOrderQuery,
		order.OrderID, order.Sugar, order.Coffee, order.Water, order.IcedTea, order.GreenTea,
		order.Name, order.Room, order.Status, userID).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns order by order id
func (or *OrderRepository) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	order := models.Order{}
	var userID *int64
	err := or.db.QueryRow(ctx, selectOrderByIDQuery, orderID).Scan(
		&order.ID, &order.OrderID, &order.Sugar, &order.Coffee, &order.Water, &order.IcedTea,
		&order.GreenTea, &order.Name, &order.Room, &order.Status, &userID, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}
	if userID != nil {
		order.UserID = uint64(*userID)
	}

	return &order, nil
}

// GetOrdersByUserID returns user orders, newest first
func (or *OrderRepository) GetOrdersByUserID(ctx context.Context, userID uint64) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersByUserIDQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// GetOrders returns all orders, newest first
func (or *OrderRepository) GetOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// UpdateOrderStatus overwrites order status
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	cmd, err := or.db.Exec(ctx, updateOrderStatusQuery, status, orderID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

func scanOrders(rows pgx.Rows) ([]models.Order, error) {
	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		var userID *int64
		err := rows.Scan(
			&order.ID, &order.OrderID, &order.Sugar, &order.Coffee, &order.Water, &order.IcedTea,
			&order.GreenTea, &order.Name, &order.Room, &order.Status, &userID, &order.CreatedAt)
		if err != nil {
			continue
		}
		if userID != nil {
			order.UserID = uint64(*userID)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
