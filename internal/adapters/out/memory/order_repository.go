package memory

import (
	"context"
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned when Add is called with an id that is
// already stored.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository implements ports.OrderRepository over the in-memory store.
//
// When bound to an active unit of work it operates under the lock the unit
// of work already holds and writes into its staging area. Standalone (read
// side for queries), it locks the store per call.
type OrderRepository struct {
	store *Store
	uow   *UnitOfWork
}

// NewOrderRepository creates a standalone repository for read paths that run
// outside a unit of work.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Add stages a new order.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	unlock := r.lockUnlessInTx()
	defer unlock()

	id := aggregate.ID()
	if r.exists(id) {
		return ErrOrderAlreadyExists
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.write(id, stored, true)
	return nil
}

// Update stages an overwrite of an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	unlock := r.lockUnlessInTx()
	defer unlock()

	id := aggregate.ID()
	if !r.exists(id) {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.write(id, stored, false)
	return nil
}

// Get returns an independent copy of the order.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	unlock := r.lockUnlessInTx()
	defer unlock()

	return r.read(id)
}

// GetForUpdate returns the order for a check-and-apply sequence. The store
// mutex held by the unit of work already serializes concurrent transitions,
// so no extra lock is taken here.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

// GetAll returns every order, oldest submission first.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	unlock := r.lockUnlessInTx()
	defer unlock()

	orders := make([]*order.Order, 0, len(r.store.orderIDs))
	for _, id := range r.store.orderIDs {
		o, err := r.read(id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if r.uow != nil && r.uow.active {
		for _, id := range r.uow.stagedIDs {
			if stage := r.uow.staged[id]; stage.insert {
				o, err := cloneOrder(stage.aggregate)
				if err != nil {
					return nil, err
				}
				orders = append(orders, o)
			}
		}
	}

	return orders, nil
}

// GetAllInStatusOlderThan returns orders in the given status submitted
// before the cutoff, oldest first.
func (r *OrderRepository) GetAllInStatusOlderThan(
	ctx context.Context, status order.Status, cutoff time.Time,
) ([]*order.Order, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if o.Status() == status && o.CreatedAt().Before(cutoff) {
			matched = append(matched, o)
		}
	}

	return matched, nil
}

// lockUnlessInTx takes the store mutex for a standalone call. Inside an
// active unit of work the mutex is already held, so this is a no-op.
func (r *OrderRepository) lockUnlessInTx() func() {
	if r.uow != nil && r.uow.active {
		return func() {}
	}

	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *OrderRepository) exists(id kernel.UUID) bool {
	if r.uow != nil && r.uow.active {
		if _, ok := r.uow.staged[id]; ok {
			return true
		}
	}
	_, ok := r.store.orders[id]
	return ok
}

func (r *OrderRepository) read(id kernel.UUID) (*order.Order, error) {
	if r.uow != nil && r.uow.active {
		if stage, ok := r.uow.staged[id]; ok {
			return cloneOrder(stage.aggregate)
		}
	}

	stored, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return cloneOrder(stored)
}

func (r *OrderRepository) write(id kernel.UUID, aggregate *order.Order, insert bool) {
	if r.uow != nil && r.uow.active {
		r.uow.stage(id, aggregate, insert)
		return
	}

	// Autocommit path for standalone repositories.
	r.store.orders[id] = aggregate
	if insert {
		r.store.orderIDs = append(r.store.orderIDs, id)
	}
}
