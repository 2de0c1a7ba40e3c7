package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mkcho/brewstation/internal/models"
)

// user-facing messages of the station UI
const (
	msgOrderNotFound    = "주문 정보를 찾을 수 없습니다."
	msgInvalidNewStatus = "잘못된 상태 값입니다."
)

type OrderService interface {
	// Create validates the draft and stores new order with initial status
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by order id
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)
	// ListUserOrders returns list of user orders, newest first
	ListUserOrders(ctx context.Context, userID uint64) ([]models.Order, error)
	// ListAllOrders returns list of all orders, newest first
	ListAllOrders(ctx context.Context) ([]models.Order, error)
	// UpdateStatus overwrites order status within the closed status set
	UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type orderRequest struct {
	Sugar    string `json:"sugar"`
	Coffee   string `json:"coffee"`
	Water    string `json:"water"`
	IcedTea  string `json:"iced_tea"`
	GreenTea string `json:"green_tea"`
	Name     string `json:"name"`
	Room     string `json:"room"`
}

type orderResponse struct {
	OrderID   string `json:"order_id"`
	Sugar     string `json:"sugar"`
	Coffee    string `json:"coffee"`
	Water     string `json:"water"`
	IcedTea   string `json:"iced_tea"`
	GreenTea  string `json:"green_tea"`
	Name      string `json:"name"`
	Room      string `json:"room"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func newOrderResponse(order *models.Order) orderResponse {
	return orderResponse{
		OrderID:   order.OrderID,
		Sugar:     order.Sugar,
		Coffee:    order.Coffee,
		Water:     order.Water,
		IcedTea:   order.IcedTea,
		GreenTea:  order.GreenTea,
		Name:      order.Name,
		Room:      order.Room,
		Status:    order.Status,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
}

type createOrderResponse struct {
	Status  string        `json:"status"`
	OrderID string        `json:"order_id"`
	Order   orderResponse `json:"order"`
}

type listOrdersResponse struct {
	Orders []orderResponse `json:"orders"`
}

// orderStatusResponse carries all order fields; Status stays "success",
// the order status itself travels as status_s.
type orderStatusResponse struct {
	Status    string `json:"status"`
	OrderID   string `json:"order_id"`
	Sugar     string `json:"sugar"`
	Coffee    string `json:"coffee"`
	Water     string `json:"water"`
	IcedTea   string `json:"iced_tea"`
	GreenTea  string `json:"green_tea"`
	Name      string `json:"name"`
	Room      string `json:"room"`
	StatusS   string `json:"status_s"`
	CreatedAt string `json:"created_at"`
}

type updateStatusResponse struct {
	Status    string `json:"status"`
	OrderID   string `json:"order_id"`
	NewStatus string `json:"new_status"`
}

// CreateOrder creates new order for the authenticated user
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req orderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		defer r.Body.Close()

		order := models.Order{
			UserID:   payload.UserID,
			Sugar:    req.Sugar,
			Coffee:   req.Coffee,
			Water:    req.Water,
			IcedTea:  req.IcedTea,
			GreenTea: req.GreenTea,
			Name:     req.Name,
			Room:     req.Room,
		}

		created, err := oh.svc.Create(r.Context(), &order)
		if err != nil {
			if errors.Is(err, models.ErrEmptyOrderField) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, createOrderResponse{
			Status:  "success",
			OrderID: created.OrderID,
			Order:   newOrderResponse(created),
		})
	}
}

// ListUserOrders returns orders of the authenticated user, newest first
func (oh *OrderHandler) ListUserOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context(), authPayloadKey)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orders, err := oh.svc.ListUserOrders(r.Context(), payload.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, newListOrdersResponse(orders))
	}
}

// ListAllOrders returns all orders, newest first. Access control is a
// deployment concern; the handler itself is open.
func (oh *OrderHandler) ListAllOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := oh.svc.ListAllOrders(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, newListOrdersResponse(orders))
	}
}

// GetOrderStatus returns single order with its current status
func (oh *OrderHandler) GetOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		order, err := oh.svc.GetOrderByID(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, models.ErrDataNotFound) {
				writeError(w, http.StatusOK, msgOrderNotFound)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, orderStatusResponse{
			Status:    "success",
			OrderID:   order.OrderID,
			Sugar:     order.Sugar,
			Coffee:    order.Coffee,
			Water:     order.Water,
			IcedTea:   order.IcedTea,
			GreenTea:  order.GreenTea,
			Name:      order.Name,
			Room:      order.Room,
			StatusS:   order.Status,
			CreatedAt: order.CreatedAt.Format(time.RFC3339),
		})
	}
}

// UpdateOrderStatus overwrites order status from the new_status query
// parameter
func (oh *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")
		newStatus := r.URL.Query().Get("new_status")

		order, err := oh.svc.UpdateStatus(r.Context(), orderID, newStatus)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidOrderStatus):
				writeError(w, http.StatusOK, msgInvalidNewStatus)
			case errors.Is(err, models.ErrDataNotFound):
				writeError(w, http.StatusOK, msgOrderNotFound)
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, updateStatusResponse{
			Status:    "success",
			OrderID:   order.OrderID,
			NewStatus: order.Status,
		})
	}
}

func newListOrdersResponse(orders []models.Order) listOrdersResponse {
	resp := listOrdersResponse{Orders: []orderResponse{}}
	for i := range orders {
		resp.Orders = append(resp.Orders, newOrderResponse(&orders[i]))
	}
	return resp
}
