package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
)

// SubmitOrderCommandHandler handles order submission. It snapshots the
// requested menu items, computes the exact total, persists the order in
// status "new", and announces it to staff.
//
// The newOrder event is published only after a successful commit, and a
// publish can never fail the submission.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	menuRepo   ports.MenuRepository
	router     services.NotificationRouter
	publisher  ports.EventPublisher
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	menuRepo ports.MenuRepository,
	router services.NotificationRouter,
	publisher ports.EventPublisher,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		menuRepo:   menuRepo,
		router:     router,
		publisher:  publisher,
	}
}

// Handle processes the submission and returns the created order.
//
// Unknown menu item ids are caller-correctable and surface as a
// value-is-invalid error, like the structural validations on the command.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines, err := h.resolveLines(ctx, cmd.ItemIDs())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.TableNumber(), lines, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishAll(h.publisher, h.router.RouteSubmitted(newOrder))
	return newOrder, nil
}

// resolveLines snapshots each requested menu item into an order line.
func (h *SubmitOrderCommandHandler) resolveLines(ctx context.Context, itemIDs []int) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := h.menuRepo.Get(ctx, id)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu item id", err)
		}

		line, err := order.LineFromItem(item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// publishAll delivers routed notifications on their channels. Publication is
// fire-and-forget: it happens after the mutation committed and can neither
// delay nor fail it.
func publishAll(publisher ports.EventPublisher, notifications []services.Notification) {
	now := time.Now()
	for _, n := range notifications {
		publisher.Publish(n.Channel, ports.Event{
			Name:       n.Name,
			Order:      n.Order,
			OccurredAt: now,
		})
	}
}
