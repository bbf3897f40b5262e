package order_test

import (
	"testing"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustLine(t *testing.T, id int, name, price string) order.Line {
	t.Helper()
	line, err := order.NewLine(id, name, mustMoney(t, price))
	require.NoError(t, err)
	return line
}

func newTestOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []order.Line{mustLine(t, 1, "Burger", "9.99")}
	}
	o, err := order.NewOrder(kernel.NewUUID(), "5", lines, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in status new with version 1", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "5", o.TableNumber())
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.True(t, o.Total().IsEqual(mustMoney(t, "9.99")))
	})

	t.Run("total is the exact decimal sum of the snapshot prices", func(t *testing.T) {
		o := newTestOrder(t,
			mustLine(t, 1, "Burger", "9.99"),
			mustLine(t, 2, "Fries", "3.49"),
			mustLine(t, 3, "Cola", "0.01"),
		)

		assert.True(t, o.Total().IsEqual(mustMoney(t, "13.49")),
			"expected 13.49, got %s", o.Total().String())
	})

	t.Run("duplicate lines are counted separately", func(t *testing.T) {
		o := newTestOrder(t,
			mustLine(t, 1, "Burger", "9.99"),
			mustLine(t, 1, "Burger", "9.99"),
		)

		assert.Len(t, o.Lines(), 2)
		assert.True(t, o.Total().IsEqual(mustMoney(t, "19.98")))
	})

	t.Run("should reject empty table number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "",
			[]order.Line{mustLine(t, 1, "Burger", "9.99")}, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty line list", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "5", nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "5",
			[]order.Line{mustLine(t, 1, "Burger", "9.99")}, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "5",
			[]order.Line{mustLine(t, 1, "Burger", "9.99")}, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "5",
			[]order.Line{{}}, time.Now())

		require.Error(t, err)
		assert.Equal(t, order.ErrLineIsNotConstructed, err)
	})
}

func TestLineFromItem(t *testing.T) {
	t.Run("snapshots name and price", func(t *testing.T) {
		item, err := menu.NewItem(7, "Soup", mustMoney(t, "4.50"))
		require.NoError(t, err)

		line, err := order.LineFromItem(item)
		require.NoError(t, err)
		assert.Equal(t, 7, line.MenuItemID())
		assert.Equal(t, "Soup", line.Name())
		assert.True(t, line.Price().IsEqual(mustMoney(t, "4.50")))
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		_, err := order.LineFromItem(menu.Item{})
		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("happy path walks the full workflow and bumps version", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, 2, o.Version())

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, 3, o.Version())

		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, 4, o.Version())
	})

	t.Run("preparing cannot jump straight to delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Preparing))

		err := o.ChangeStatus(order.Delivered)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		// Rejection leaves the order completely untouched.
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, 2, o.Version())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.ChangeStatus(order.Preparing)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, 2, o.Version())
	})

	t.Run("rejected transition reports both statuses", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Ready)
		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.New, transitionErr.From)
		assert.Equal(t, order.Ready, transitionErr.To)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips an order through its parts", func(t *testing.T) {
		original := newTestOrder(t)
		require.NoError(t, original.ChangeStatus(order.Preparing))

		restored, err := order.RestoreOrder(
			original.ID(),
			original.TableNumber(),
			original.Lines(),
			original.Total(),
			original.Status(),
			original.Version(),
			original.CreatedAt(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, original.Status(), restored.Status())
		assert.Equal(t, original.Version(), restored.Version())
		assert.True(t, restored.Total().IsEqual(original.Total()))
		assert.Equal(t, original.Lines(), restored.Lines())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "5",
			[]order.Line{mustLine(t, 1, "Burger", "9.99")},
			mustMoney(t, "9.99"), order.Unknown, 1, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-positive version", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "5",
			[]order.Line{mustLine(t, 1, "Burger", "9.99")},
			mustMoney(t, "9.99"), order.New, 0, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestOrder_Lines_ReturnsCopy(t *testing.T) {
	o := newTestOrder(t,
		mustLine(t, 1, "Burger", "9.99"),
		mustLine(t, 2, "Fries", "3.49"),
	)

	lines := o.Lines()
	lines[0] = mustLine(t, 99, "Tampered", "0.01")

	assert.Equal(t, 1, o.Lines()[0].MenuItemID())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.Error(t, o.Validate())
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())
	})
}
