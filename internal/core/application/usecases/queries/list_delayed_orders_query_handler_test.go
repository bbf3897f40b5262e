package queries_test

import (
	"context"
	"testing"
	"time"

	"tableside/internal/adapters/out/memory"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDelayedOrdersQueryHandler_ReturnsOnlyStuckPreparingOrders(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	handler := queries.NewListDelayedOrdersQueryHandler(repo)

	now := time.Now()
	stuck := storeOrderAt(t, repo, "1", order.Preparing, now.Add(-30*time.Minute))
	storeOrderAt(t, repo, "2", order.Preparing, now.Add(-time.Minute))
	storeOrderAt(t, repo, "3", order.New, now.Add(-30*time.Minute))
	storeOrderAt(t, repo, "4", order.Ready, now.Add(-30*time.Minute))

	query, err := queries.NewListDelayedOrdersQuery(15 * time.Minute)
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, stuck.ID(), result[0].ID())
}

func TestListDelayedOrdersQueryHandler_NoDelayedOrders_ReturnsEmptySlice(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	handler := queries.NewListDelayedOrdersQueryHandler(repo)

	storeOrderAt(t, repo, "1", order.Preparing, time.Now())

	query, err := queries.NewListDelayedOrdersQuery(15 * time.Minute)
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListDelayedOrdersQueryHandler_InvalidQuery_ReturnsError(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	handler := queries.NewListDelayedOrdersQueryHandler(repo)

	result, err := handler.Handle(context.Background(), queries.ListDelayedOrdersQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListDelayedOrdersQueryIsNotConstructed)
	assert.Nil(t, result)
}
