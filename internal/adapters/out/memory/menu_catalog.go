package memory

import (
	"context"
	"sort"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/pkg/errs"
)

// MenuCatalog implements ports.MenuRepository over a fixed item set.
// The catalog is read-only after construction, so lookups need no locking.
type MenuCatalog struct {
	items map[int]menu.Item
}

// NewMenuCatalog creates a catalog from the given items.
func NewMenuCatalog(items []menu.Item) (*MenuCatalog, error) {
	catalog := &MenuCatalog{items: make(map[int]menu.Item, len(items))}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		catalog.items[item.ID()] = item
	}
	return catalog, nil
}

// NewSeededMenuCatalog creates a catalog with the default menu.
func NewSeededMenuCatalog() (*MenuCatalog, error) {
	seed := []struct {
		id    int
		name  string
		price string
	}{
		{1, "Classic Burger", "9.99"},
		{2, "Cheeseburger", "10.99"},
		{3, "Fries", "3.49"},
		{4, "Caesar Salad", "7.99"},
		{5, "Margherita Pizza", "11.99"},
		{6, "Soda", "1.99"},
		{7, "Coffee", "2.49"},
	}

	items := make([]menu.Item, 0, len(seed))
	for _, s := range seed {
		price, err := kernel.MoneyFromString(s.price)
		if err != nil {
			return nil, err
		}

		item, err := menu.NewItem(s.id, s.name, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return NewMenuCatalog(items)
}

// GetAll returns every menu item ordered by id.
func (c *MenuCatalog) GetAll(_ context.Context) ([]menu.Item, error) {
	items := make([]menu.Item, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID() < items[j].ID()
	})
	return items, nil
}

// Get returns the menu item with the given id.
func (c *MenuCatalog) Get(_ context.Context, id int) (menu.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return menu.Item{}, errs.NewObjectNotFoundError("menu item", id)
	}
	return item, nil
}
