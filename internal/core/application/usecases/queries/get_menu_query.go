// Package queries contains read-only operations against the stores.
// Queries never mutate state and never publish events; they serve the HTTP
// surface, the SSE snapshots, and the background jobs.
package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

// ErrGetMenuQueryIsNotConstructed is returned when a GetMenuQuery was not
// created via NewGetMenuQuery.
var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the establishment's full menu in listing order.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a parameterless query for the full menu.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}
