package queries

import (
	"context"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

// ListOrdersQueryHandler serves the order board: every order ever
// submitted, in insertion order.
type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler backed by the given order repository.
func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns all orders in insertion order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orderRepo.GetAll(ctx)
}
