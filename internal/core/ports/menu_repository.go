package ports

import (
	"context"

	"tableside/internal/core/domain/model/menu"
)

// MenuRepository owns the immutable menu reference data. Orders only ever
// hold snapshots of its items, taken at submission time.
type MenuRepository interface {
	// GetAll retrieves the full menu in listing order.
	GetAll(ctx context.Context) ([]menu.Item, error)

	// Get retrieves a single menu item by id, or an object-not-found error.
	Get(ctx context.Context, id int) (menu.Item, error)
}
