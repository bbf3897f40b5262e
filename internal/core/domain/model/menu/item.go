package menu

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a menu entry offered by the establishment: a numeric identity,
// a display name, and a non-negative price.
//
// Item is immutable reference data. Orders never reference an Item directly;
// at submission time its name and price are copied into the order as a
// snapshot, so later menu edits do not affect already-submitted orders.
type Item struct {
	id    int
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a validated menu item.
// The id must be positive and the name non-empty; the price is already
// guaranteed non-negative by kernel.Money.
func NewItem(id int, name string, price kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the menu item identifier.
func (i Item) ID() int {
	return i.id
}

// Name returns the display name.
func (i Item) Name() string {
	return i.name
}

// Price returns the current listed price.
func (i Item) Price() kernel.Money {
	return i.price
}

func (i *Item) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	i.price = price
	return nil
}
