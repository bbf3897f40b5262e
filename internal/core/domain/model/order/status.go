package order

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for status graph violations.
// Use errors.Is against it to classify; the concrete InvalidTransitionError
// carries the current and the attempted status.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected status change. From is the
// status the order currently has, To the status that was requested. The
// caller can use both to resynchronize its view; retrying the same request
// would repeat the same violation.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the kitchen workflow.
//
// State transitions (directed, no cycles):
//
//	new ──> preparing ──> ready ──> delivered
//	 │          │           │
//	 └──────────┴───────────┴────> cancelled
//
// delivered and cancelled are terminal; multi-step jumps (e.g. new -> ready)
// are rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at submission.
	New

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is ready for pickup; the submitting table
	// is notified when this status is reached.
	Ready

	// Delivered indicates the order reached the table. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire representation of every status,
// matching the lowercase strings used on the HTTP and event surfaces.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getAllowedTransitions returns the full transition graph. A status absent
// from a source's target list is not reachable from it; terminal statuses
// have no targets at all.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		New:       {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses the wire form ("new", "preparing", ...) into a
// Status. Unknown strings fail with a value-is-invalid error, which the HTTP
// edge maps to a 400.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// Validate checks that the Status is one of the five lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions exist from this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether target is directly reachable from s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to target against the graph.
// On success it returns target; otherwise it returns an
// InvalidTransitionError carrying both statuses. Status is a value type,
// so a failed call cannot leave the caller's state half-moved.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}
