package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

// ErrListOrdersQueryIsNotConstructed is returned when a ListOrdersQuery was
// not created via NewListOrdersQuery.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order, terminal ones included, in
// insertion order. This is the fulfillment surface's snapshot and must stay
// consistent with the events: the snapshot is authoritative, events received
// after subscribing reconcile against it by order version.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a parameterless query for all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
