package memory_test

import (
	"sync"
	"testing"
	"time"

	"tableside/internal/adapters/out/memory"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, tableNumber string) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("9.99")
	require.NoError(t, err)
	line, err := order.NewLine(1, "Burger", price)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), tableNumber, []order.Line{line}, time.Now())
	require.NoError(t, err)
	return o
}

func TestOrderRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewOrderRepository(store)

	o := newTestOrder(t, "5")
	require.NoError(t, repo.Add(ctx, o))

	got, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, o.ID().IsEqual(got.ID()))
	assert.Equal(t, "5", got.TableNumber())
	assert.Equal(t, order.New, got.Status())
	assert.Equal(t, 1, got.Version())
	assert.Equal(t, "9.99", got.Total().String())
}

func TestOrderRepository_GetReturnsIndependentCopy(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewOrderRepository(store)

	o := newTestOrder(t, "5")
	require.NoError(t, repo.Add(ctx, o))

	first, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, first.ChangeStatus(order.Preparing))

	// Mutating a fetched copy never touches the stored record.
	second, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.New, second.Status())
	assert.Equal(t, 1, second.Version())
}

func TestOrderRepository_AddDuplicate(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewOrderRepository(store)

	o := newTestOrder(t, "5")
	require.NoError(t, repo.Add(ctx, o))

	err := repo.Add(ctx, o)
	require.Error(t, err)
	assert.ErrorIs(t, err, memory.ErrOrderAlreadyExists)
}

func TestOrderRepository_GetNonExistent(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())

	_, err := repo.Get(ctx, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_UpdateNonExistent(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())

	err := repo.Update(ctx, newTestOrder(t, "5"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewOrderRepository(store)

	tables := []string{"3", "1", "2"}
	for _, table := range tables {
		require.NoError(t, repo.Add(ctx, newTestOrder(t, table)))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, table := range tables {
		assert.Equal(t, table, all[i].TableNumber())
	}
}

func TestOrderRepository_GetAllInStatusOlderThan(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewOrderRepository(store)

	base := time.Now()
	cutoff := base.Add(-5 * time.Minute)

	price, err := kernel.MoneyFromString("9.99")
	require.NoError(t, err)
	line, err := order.NewLine(1, "Burger", price)
	require.NoError(t, err)

	stale, err := order.NewOrder(kernel.NewUUID(), "1", []order.Line{line}, base.Add(-10*time.Minute))
	require.NoError(t, err)
	require.NoError(t, stale.ChangeStatus(order.Preparing))

	fresh, err := order.NewOrder(kernel.NewUUID(), "2", []order.Line{line}, base)
	require.NoError(t, err)
	require.NoError(t, fresh.ChangeStatus(order.Preparing))

	staleButNew, err := order.NewOrder(kernel.NewUUID(), "3", []order.Line{line}, base.Add(-10*time.Minute))
	require.NoError(t, err)

	for _, o := range []*order.Order{stale, fresh, staleButNew} {
		require.NoError(t, repo.Add(ctx, o))
	}

	matched, err := repo.GetAllInStatusOlderThan(ctx, order.Preparing, cutoff)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.True(t, stale.ID().IsEqual(matched[0].ID()))
}

func TestUnitOfWork_CommitPersistsStagedWrites(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	o := newTestOrder(t, "5")

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	// Visible inside the transaction before commit.
	inside, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, o.ID().IsEqual(inside.ID()))

	require.NoError(t, uow.Commit(ctx))

	got, err := memory.NewOrderRepository(store).Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, o.ID().IsEqual(got.ID()))
}

func TestUnitOfWork_RollbackDiscardsStagedWrites(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	o := newTestOrder(t, "5")

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Rollback(ctx))

	_, err := memory.NewOrderRepository(store).Get(ctx, o.ID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	ctx := t.Context()
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()

	assert.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
}

// TestUnitOfWork_ConcurrentTransitionsNeverLoseUpdates drives many
// concurrent check-and-apply sequences against a single order. Exactly one
// transition to each status can win; every applied transition must be
// reflected in the final version.
func TestUnitOfWork_ConcurrentTransitionsNeverLoseUpdates(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	o := newTestOrder(t, "5")
	require.NoError(t, memory.NewOrderRepository(store).Add(ctx, o))

	const attempts = 50
	var wg sync.WaitGroup
	applied := make(chan order.Status, attempts)

	for i := range attempts {
		wg.Add(1)
		target := []order.Status{order.Preparing, order.Ready, order.Delivered}[i%3]

		go func() {
			defer wg.Done()

			uow := factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() {
				_ = uow.Rollback(ctx)
			}()

			repo := uow.OrderRepository()
			current, err := repo.GetForUpdate(ctx, o.ID())
			if err != nil {
				return
			}

			if err = current.ChangeStatus(target); err != nil {
				return
			}
			if err = repo.Update(ctx, current); err != nil {
				return
			}
			if err = uow.Commit(ctx); err != nil {
				return
			}
			applied <- target
		}()
	}

	wg.Wait()
	close(applied)

	appliedCount := 0
	seen := make(map[order.Status]int)
	for status := range applied {
		appliedCount++
		seen[status]++
	}

	final, err := memory.NewOrderRepository(store).Get(ctx, o.ID())
	require.NoError(t, err)

	// Each lifecycle stage can be won at most once.
	for status, count := range seen {
		assert.LessOrEqual(t, count, 1, "status %s applied more than once", status)
	}

	// Version moved exactly once per applied transition: no lost updates.
	assert.Equal(t, 1+appliedCount, final.Version())
	assert.False(t, final.Status() == order.New && appliedCount > 0)
}
