// Package memory provides in-process implementations of the persistence
// ports. The store is the default backend when no database is configured:
// a single mutex serializes units of work, giving the same check-and-apply
// atomicity the PostgreSQL adapter gets from row locks.
package memory

import (
	"sync"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// Store holds the committed order records. Insertion order is preserved so
// listings replay orders oldest-submission-first.
//
// The mutex is held for the whole span of a unit of work (Begin to
// Commit/Rollback), not per operation, so a transaction always evaluates
// against fully committed state.
type Store struct {
	mu       sync.Mutex
	orders   map[kernel.UUID]*order.Order
	orderIDs []kernel.UUID
}

// NewStore creates an empty in-memory order store.
func NewStore() *Store {
	return &Store{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// cloneOrder makes an independent copy of an aggregate so no caller ever
// holds a pointer into committed state.
func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(), o.TableNumber(), o.Lines(), o.Total(), o.Status(), o.Version(), o.CreatedAt())
}
