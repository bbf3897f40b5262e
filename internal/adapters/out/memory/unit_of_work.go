package memory

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

// ErrNoActiveTransaction is returned when Commit or Rollback is called
// without a matching Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates store-backed unit of work instances.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work. Each business operation gets its own
// instance; instances must not be shared across goroutines.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the transaction boundary over the in-memory store.
//
// Begin takes the store mutex and holds it until Commit or Rollback, so
// concurrent units of work serialize completely. Writes are staged in the
// unit of work and only reach the store on Commit, which keeps a rolled
// back mutation invisible to every reader.
type UnitOfWork struct {
	store     *Store
	active    bool
	staged    map[kernel.UUID]*orderStage
	stagedIDs []kernel.UUID
}

// orderStage is one staged write: an insert or an overwrite of an existing record.
type orderStage struct {
	aggregate *order.Order
	insert    bool
}

// Begin locks the store for this unit of work. Repeated calls on the same
// instance are safe and do not re-lock.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.staged = make(map[kernel.UUID]*orderStage)
	uow.stagedIDs = nil
	return nil
}

// Commit applies the staged writes to the store and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	for _, id := range uow.stagedIDs {
		stage := uow.staged[id]
		uow.store.orders[id] = stage.aggregate
		if stage.insert {
			uow.store.orderIDs = append(uow.store.orderIDs, id)
		}
	}

	uow.finish()
	return nil
}

// Rollback discards the staged writes and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

// OrderRepository returns a repository bound to this unit of work. Its
// writes stage into the transaction; its reads see staged state first.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store, uow: uow}
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.staged = nil
	uow.stagedIDs = nil
	uow.store.mu.Unlock()
}

// stage records a write. The first write for an id decides whether it is an
// insert; later writes in the same transaction overwrite the staged record.
func (uow *UnitOfWork) stage(id kernel.UUID, aggregate *order.Order, insert bool) {
	if existing, ok := uow.staged[id]; ok {
		existing.aggregate = aggregate
		return
	}

	uow.staged[id] = &orderStage{aggregate: aggregate, insert: insert}
	uow.stagedIDs = append(uow.stagedIDs, id)
}
