package queries

import (
	"context"

	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/ports"
)

// GetMenuQueryHandler serves the menu reference data.
type GetMenuQueryHandler struct {
	menuRepo ports.MenuRepository
}

// NewGetMenuQueryHandler creates a handler backed by the given menu repository.
func NewGetMenuQueryHandler(menuRepo ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menuRepo: menuRepo}
}

// Handle returns every menu item in listing order.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.menuRepo.GetAll(ctx)
}
