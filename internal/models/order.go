package models

import "time"

// order status
const (
	OrderStatusPreparing  = "preparing"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
)

// Order is order entity
type Order struct {
	ID        uint64
	UserID    uint64
	OrderID   string
	Sugar     string
	Coffee    string
	Water     string
	IcedTea   string
	GreenTea  string
	Name      string
	Room      string
	Status    string
	CreatedAt time.Time
}

// ValidOrderStatus reports whether s is a member of the closed status set.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPreparing, OrderStatusDelivering, OrderStatusDelivered:
		return true
	}
	return false
}
