package ports

import (
	"time"

	"tableside/internal/core/domain/model/order"
)

// Event is a payload delivered on a named channel. The Order it carries must
// be treated as immutable by subscribers; its Version lets consumers detect
// duplicate or stale deliveries against a fetched snapshot.
type Event struct {
	Name       string
	Order      *order.Order
	OccurredAt time.Time
}

// EventPublisher is the fan-out side of the real-time event channel.
//
// Publish delivers the event to every subscriber registered on the channel
// at the moment of the call. It is non-blocking with respect to the
// publisher: a slow or disconnected subscriber never delays or fails the
// call (drop-on-failure). Delivery is at-most-once with no replay buffer.
// Publication problems are never surfaced to the mutation path; they are
// observable only through the broadcaster's own logging.
type EventPublisher interface {
	Publish(channel string, event Event)
}

// Subscription is a managed handle on a channel subscription. Acquire it at
// the start of a consumer's active scope and release it on every exit path.
type Subscription interface {
	// Events returns the delivery channel. It is closed after Close.
	Events() <-chan Event

	// Close stops further delivery. Idempotent.
	Close()
}

// EventStream is the consumer side of the real-time event channel.
//
// Delivery begins strictly after Subscribe returns: an event published
// before the call is never received. A consumer reconciling with stored
// state must therefore subscribe FIRST and fetch its snapshot second,
// treating the snapshot as authoritative and re-applying any event received
// in between idempotently (same status and version is a no-op).
type EventStream interface {
	Subscribe(channel string) Subscription
}
