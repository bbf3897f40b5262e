package commands

import (
	"errors"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

// ErrSubmitOrderCommandIsNotConstructed is returned when a SubmitOrderCommand
// was not created via NewSubmitOrderCommand.
var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a customer's request to place an order:
// the table it is for and the menu items being ordered, by id. The same
// item id may appear more than once to order it multiple times.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("5", []int{1, 1, 3})
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	tableNumber string
	itemIDs     []int

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// An empty table number or an empty item list is a validation error the
// caller can correct; both surface as value-is-required.
func NewSubmitOrderCommand(tableNumber string, itemIDs []int) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableNumber(tableNumber),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// TableNumber returns the table the order is for.
func (c SubmitOrderCommand) TableNumber() string {
	return c.tableNumber
}

// ItemIDs returns the ordered menu item ids, duplicates preserved.
func (c SubmitOrderCommand) ItemIDs() []int {
	ids := make([]int, len(c.itemIDs))
	copy(ids, c.itemIDs)
	return ids
}

func (c *SubmitOrderCommand) setTableNumber(tableNumber string) error {
	if tableNumber == "" {
		return errs.NewValueIsRequiredError("table number")
	}
	c.tableNumber = tableNumber
	return nil
}

func (c *SubmitOrderCommand) setItemIDs(itemIDs []int) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.itemIDs = make([]int, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}
