package order

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or LineFromItem.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or LineFromItem")

// Line is a point-in-time snapshot of one ordered menu item. Name and price
// are copied from the menu at submission, so later menu edits never change
// what a customer agreed to pay. The same menu item may appear on several
// lines when ordered more than once.
type Line struct {
	menuItemID int
	name       string
	price      kernel.Money

	guard guard.ConstructorGuard
}

// NewLine creates a validated snapshot line.
func NewLine(menuItemID int, name string, price kernel.Money) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setName(name),
		line.setPrice(price),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// LineFromItem snapshots a menu item into a line, copying its name and price.
func LineFromItem(item menu.Item) (Line, error) {
	if err := item.Validate(); err != nil {
		return Line{}, err
	}
	return NewLine(item.ID(), item.Name(), item.Price())
}

// Validate ensures the line was created through a constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item this line snapshots.
func (l Line) MenuItemID() int {
	return l.menuItemID
}

// Name returns the item name as it was at submission time.
func (l Line) Name() string {
	return l.name
}

// Price returns the item price as it was at submission time.
func (l Line) Price() kernel.Money {
	return l.price
}

func (l *Line) setMenuItemID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	l.name = name
	return nil
}

func (l *Line) setPrice(price kernel.Money) error {
	l.price = price
	return nil
}
