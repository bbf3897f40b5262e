// Package order provides the domain model for the order lifecycle in the
// tableside ordering system. It implements the Order aggregate root with an
// immutable item/price snapshot and a validated status state machine.
//
// The package includes:
//   - Order: The aggregate root managing identity, snapshot, total, and lifecycle
//   - Line: A point-in-time snapshot of one ordered menu item
//   - Status: A state machine enforcing the kitchen workflow
//
// Key business rules:
//   - Orders must have a valid identifier, a non-empty table number, and at least one line
//   - The total equals the exact sum of the snapshot prices, fixed at submission
//   - Status follows the workflow new -> preparing -> ready -> delivered, with
//     cancellation possible from any non-terminal status
//   - Each applied transition increments the order's version number
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
