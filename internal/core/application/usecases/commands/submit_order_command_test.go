package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand("5", []int{1, 1, 3})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "5", cmd.TableNumber())
		assert.Equal(t, []int{1, 1, 3}, cmd.ItemIDs())
	})

	t.Run("should reject empty table number", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("", []int{1})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand("5", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("item ids are copied, not aliased", func(t *testing.T) {
		ids := []int{1, 2}
		cmd, err := commands.NewSubmitOrderCommand("5", ids)
		require.NoError(t, err)

		ids[0] = 99
		assert.Equal(t, []int{1, 2}, cmd.ItemIDs())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.SubmitOrderCommand

		err := cmd.Validate()
		require.Error(t, err)
		assert.Equal(t, commands.ErrSubmitOrderCommandIsNotConstructed, err)
	})
}
