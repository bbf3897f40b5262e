package queries

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

// ListDelayedOrdersQueryHandler finds orders stuck in "preparing".
type ListDelayedOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListDelayedOrdersQueryHandler creates a handler backed by the given order repository.
func NewListDelayedOrdersQueryHandler(orderRepo ports.OrderRepository) ListDelayedOrdersQueryHandler {
	return ListDelayedOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns orders in "preparing" that were submitted before
// now minus the query's threshold.
func (h ListDelayedOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListDelayedOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.Threshold())
	return h.orderRepo.GetAllInStatusOlderThan(ctx, order.Preparing, cutoff)
}
