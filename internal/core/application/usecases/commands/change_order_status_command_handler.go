package commands

import (
	"context"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles validated status transitions.
//
// The check-and-apply sequence runs inside a unit of work with a
// write-locked read (GetForUpdate), so two concurrent requests for the same
// order id serialize: the second evaluates against the state the first one
// committed, never silently overwriting it.
//
// Events are published only after a successful commit. A rejected
// transition leaves the stored record untouched and emits nothing.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	router     services.NotificationRouter
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status change requests.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	router services.NotificationRouter,
	publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		router:     router,
		publisher:  publisher,
	}
}

// Handle applies the requested transition and returns the updated order.
//
// Fails with an object-not-found error for an unknown id and with
// order.ErrInvalidTransition when the move is not in the transition graph;
// the latter carries the current status so the caller can resynchronize.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeStatus(cmd.TargetStatus()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishAll(h.publisher, h.router.RouteStatusChanged(existing))
	return existing, nil
}
