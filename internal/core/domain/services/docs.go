// Package services contains domain services for the tableside ordering
// system: logic that spans or sits beside aggregates without belonging to
// any single one.
//
// NotificationRouter is the routing policy between order lifecycle events
// and the named channels of the real-time surface. Keeping it a pure
// function of the order keeps channel knowledge out of both the aggregates
// and the broadcaster, which knows nothing about order semantics.
package services
