// Package menu provides the immutable reference data offered to customers.
//
// The package contains Item, a value object combining identity, display name,
// and price. The catalog itself is owned by a MenuRepository port; the domain
// only guarantees that an Item is well-formed. Orders copy item name and price
// at submission time (a snapshot), decoupling submitted orders from later
// menu changes.
package menu
