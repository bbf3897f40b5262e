// Package broadcast provides the in-process, channel-addressed pub/sub
// engine behind the real-time order surface. Channels are opaque string
// identifiers; the broadcaster knows nothing about order semantics.
package broadcast

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"tableside/internal/core/ports"
)

// subscriberBuffer is the per-subscription delivery buffer. A subscriber
// that falls further behind than this starts losing events (at-most-once,
// drop-on-failure), never slowing the publisher down.
const subscriberBuffer = 16

// Broadcaster fans events out to currently registered subscribers.
//
// Delivery semantics are at-most-once and best-effort with no replay
// buffer: a subscriber that registers after an event was published never
// receives it. Consumers that reconcile with stored state must subscribe
// before fetching their snapshot (see ports.EventStream).
//
// Broadcaster is an explicitly constructed dependency with process-wide
// lifetime: build it in the composition root, pass it where needed, and
// Close it on shutdown.
type Broadcaster struct {
	logger  *slog.Logger
	dropped atomic.Uint64

	mu       sync.RWMutex
	channels map[string]map[uint64]*subscription
	nextID   uint64
	closed   bool
}

// NewBroadcaster creates a Broadcaster ready for use.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		logger:   logger.With("component", "broadcaster"),
		channels: make(map[string]map[uint64]*subscription),
	}
}

// Subscribe registers a listener on the named channel. Delivery begins
// strictly after Subscribe returns. The returned handle must be closed on
// every exit path of the consumer's scope; Close is idempotent.
//
// Subscribing on a closed broadcaster returns a handle whose event channel
// is already closed.
func (b *Broadcaster) Subscribe(channel string) ports.Subscription {
	sub := &subscription{
		broadcaster: b,
		channel:     channel,
		events:      make(chan ports.Event, subscriberBuffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(sub.events)
		sub.once.Do(func() {})
		return sub
	}

	b.nextID++
	sub.id = b.nextID

	subs, ok := b.channels[channel]
	if !ok {
		subs = make(map[uint64]*subscription)
		b.channels[channel] = subs
	}
	subs[sub.id] = sub

	return sub
}

// Publish delivers the event to every subscriber currently registered on
// the channel. The registry is read under a shared lock, so subscriptions
// added or removed mid-publish neither crash the iteration nor receive a
// duplicate within this single call.
//
// Delivery is a non-blocking send: a subscriber with a full buffer is
// skipped and the drop is logged, never delaying or failing the publisher.
func (b *Broadcaster) Publish(channel string, event ports.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, sub := range b.channels[channel] {
		select {
		case sub.events <- event:
		default:
			b.dropped.Add(1)
			b.logger.Warn("dropping event for slow subscriber",
				"channel", channel,
				"event", event.Name,
				"dropped_total", b.dropped.Load(),
			)
		}
	}
}

// Dropped returns how many events have been discarded because a
// subscriber's buffer was full.
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}

// Close shuts the broadcaster down, releasing every remaining subscription.
// Publishes after Close are silently discarded.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true

	var remaining []*subscription
	for _, subs := range b.channels {
		for _, sub := range subs {
			remaining = append(remaining, sub)
		}
	}
	b.channels = make(map[string]map[uint64]*subscription)
	b.mu.Unlock()

	// Release outside the lock; each handle's Close is idempotent.
	for _, sub := range remaining {
		sub.Close()
	}
}

// subscription is the managed handle returned by Subscribe.
type subscription struct {
	broadcaster *Broadcaster
	channel     string
	id          uint64
	events      chan ports.Event
	once        sync.Once
}

// Events returns the delivery channel. It is closed once the subscription
// is released.
func (s *subscription) Events() <-chan ports.Event {
	return s.events
}

// Close unregisters the subscription and closes its event channel.
// Safe to call multiple times and concurrently with ongoing publishes.
func (s *subscription) Close() {
	s.once.Do(func() {
		b := s.broadcaster

		b.mu.Lock()
		defer b.mu.Unlock()

		if subs, ok := b.channels[s.channel]; ok {
			delete(subs, s.id)
			if len(subs) == 0 {
				delete(b.channels, s.channel)
			}
		}
		close(s.events)
	})
}
