package queries

import (
	"errors"
	"time"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

// ErrListDelayedOrdersQueryIsNotConstructed is returned when a
// ListDelayedOrdersQuery was not created via NewListDelayedOrdersQuery.
var ErrListDelayedOrdersQueryIsNotConstructed = errors.New(
	"ListDelayedOrdersQuery must be created via NewListDelayedOrdersQuery constructor",
)

// ListDelayedOrdersQuery finds orders that have been in "preparing" longer
// than a threshold, measured from submission. Used by the escalation job to
// alert staff about stuck orders.
type ListDelayedOrdersQuery struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewListDelayedOrdersQuery creates a query with the given age threshold.
// The threshold must be positive.
func NewListDelayedOrdersQuery(threshold time.Duration) (ListDelayedOrdersQuery, error) {
	query := ListDelayedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setThreshold(threshold); err != nil {
		return ListDelayedOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDelayedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListDelayedOrdersQueryIsNotConstructed)
}

// Threshold returns how long an order may sit in "preparing" before it
// counts as delayed.
func (q ListDelayedOrdersQuery) Threshold() time.Duration {
	return q.threshold
}

func (q *ListDelayedOrdersQuery) setThreshold(threshold time.Duration) error {
	if threshold <= 0 {
		return errs.NewValueIsInvalidError("threshold")
	}
	q.threshold = threshold
	return nil
}
