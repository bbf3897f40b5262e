// Package ports defines the contracts between the application core and
// infrastructure adapters: persistence for orders and menu reference data,
// transaction management, and the real-time event channel surface.
package ports

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderRepository is the single source of truth for order records.
// Orders are never deleted; terminal orders stay listed for audit and display.
//
// Update is the only mutation entry point after Add, and it must be reached
// exclusively through the aggregate's validated ChangeStatus path. The
// repository does not re-validate the transition graph; that logic lives in
// one place, on the Order aggregate.
type OrderRepository interface {
	// Add persists a newly submitted order.
	// The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the state of an existing order after a validated
	// status change. Fails with an object-not-found error if the order
	// does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or an object-not-found error.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by id with write intent: within a
	// unit of work it must block concurrent GetForUpdate calls for the same
	// id until the surrounding transaction completes, so that two
	// concurrent transitions serialize and the second one observes the
	// result of the first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatusOlderThan retrieves orders currently in the given
	// status that were created before the cutoff. Used by the
	// delayed-order escalation job.
	GetAllInStatusOlderThan(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)
}
