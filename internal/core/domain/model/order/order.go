package order

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a customer's submitted request. It owns the
// identity, the immutable item/price snapshot, and the mutable lifecycle
// status.
//
// Invariants:
//   - tableNumber is non-empty and lines is non-empty
//   - total equals the exact sum of the line prices, computed once at
//     creation and never recomputed from live menu data
//   - status only moves along the transition graph; ChangeStatus is the sole
//     mutation path
//   - version starts at 1 and increases by one with every applied transition,
//     so consumers can order or deduplicate events against snapshots
//
// Orders are never deleted; delivered and cancelled orders are retained for
// audit and display.
type Order struct {
	id          kernel.UUID
	tableNumber string
	lines       []Line
	total       kernel.Money
	status      Status
	version     int
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly submitted order in status "new" with version 1.
// The total is computed here, once, from the snapshot lines.
func NewOrder(id kernel.UUID, tableNumber string, lines []Line, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:  New,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setLines(lines),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.total = sumLines(o.lines)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total and
// status are trusted as-is; only structural invariants are re-checked.
func RestoreOrder(
	id kernel.UUID,
	tableNumber string,
	lines []Line,
	total kernel.Money,
	status Status,
	version int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setLines(lines),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not greater than 0", version))
	}

	o.total = total
	o.status = status
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from untrusted sources.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier, assigned at creation.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableNumber returns the table the order was submitted for.
func (o *Order) TableNumber() string {
	return o.tableNumber
}

// Lines returns a copy of the snapshot lines, preserving submission order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the order total, fixed at submission time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the per-order event sequence number. It changes exactly
// when status changes.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order along the transition graph.
//
// On success the status becomes target and the version is incremented.
// On an invalid pair it returns an InvalidTransitionError and the order is
// completely unchanged: no partial write, and the caller must not emit an
// event. This is the only mutation path on the aggregate.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.version++
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(tableNumber string) error {
	if tableNumber == "" {
		return errs.NewValueIsRequiredError("table number")
	}
	o.tableNumber = tableNumber
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

// sumLines computes the exact decimal total of the snapshot prices.
func sumLines(lines []Line) kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range lines {
		total = total.Add(line.Price())
	}
	return total
}
