package http

import (
	"time"

	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Status carries the order's current status on transition conflicts,
	// so the caller can resynchronize its view.
	Status string `json:"status,omitempty"`
}

// MenuItemResponse is one catalog entry of GET /api/menu.
type MenuItemResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// SubmitOrderRequest is the body of POST /api/orders.
type SubmitOrderRequest struct {
	TableNumber string `json:"tableNumber"`
	Items       []int  `json:"items"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/orders/:id.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse is one snapshot line of an order payload.
type OrderLineResponse struct {
	MenuItemID int    `json:"menuItemId"`
	Name       string `json:"name"`
	Price      string `json:"price"`
}

// OrderResponse is the order payload shared by the REST endpoints and the
// event stream. Prices are decimal strings; status is the lowercase wire
// name; version orders events per order.
type OrderResponse struct {
	ID          string              `json:"id"`
	TableNumber string              `json:"tableNumber"`
	Items       []OrderLineResponse `json:"items"`
	Total       string              `json:"total"`
	Status      string              `json:"status"`
	Version     int                 `json:"version"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func menuItemToResponse(item menu.Item) MenuItemResponse {
	return MenuItemResponse{
		ID:    item.ID(),
		Name:  item.Name(),
		Price: item.Price().String(),
	}
}

func orderToResponse(o *order.Order) OrderResponse {
	lines := o.Lines()
	items := make([]OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderLineResponse{
			MenuItemID: line.MenuItemID(),
			Name:       line.Name(),
			Price:      line.Price().String(),
		})
	}

	return OrderResponse{
		ID:          o.ID().String(),
		TableNumber: o.TableNumber(),
		Items:       items,
		Total:       o.Total().String(),
		Status:      o.Status().String(),
		Version:     o.Version(),
		CreatedAt:   o.CreatedAt(),
	}
}

func ordersToResponse(orders []*order.Order) []OrderResponse {
	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToResponse(o))
	}
	return response
}
