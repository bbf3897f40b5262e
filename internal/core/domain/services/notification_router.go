package services

import (
	"tableside/internal/core/domain/model/order"
)

// Channel and event names of the real-time surface. Channels are opaque
// strings to the broadcaster; only this router knows which one an order
// event belongs on.
const (
	// StaffChannel carries every order event for the fulfillment surface.
	StaffChannel = "staff"

	EventNewOrder     = "newOrder"
	EventOrderUpdated = "orderUpdated"
	EventOrderReady   = "orderReady"
	EventOrderDelayed = "orderDelayed"
)

// TableChannel returns the channel scoped to a single table, used to tell
// exactly one party of customers that their order is ready.
func TableChannel(tableNumber string) string {
	return "table:" + tableNumber
}

// Notification is one routed event: which channel it belongs on, its name,
// and the order it concerns.
type Notification struct {
	Channel string
	Name    string
	Order   *order.Order
}

// NotificationRouter is the policy mapping order lifecycle events to
// channels. It is pure: it decides destinations, it does not deliver.
// Staff-wide events go to the staff channel; the table-scoped "ready" event
// additionally goes to the submitting table's channel.
type NotificationRouter struct{}

// NewNotificationRouter creates a NotificationRouter instance.
func NewNotificationRouter() NotificationRouter {
	return NotificationRouter{}
}

// RouteSubmitted routes a freshly created order: one newOrder event on the
// staff channel.
func (NotificationRouter) RouteSubmitted(o *order.Order) []Notification {
	return []Notification{
		{Channel: StaffChannel, Name: EventNewOrder, Order: o},
	}
}

// RouteStatusChanged routes an applied transition: an orderUpdated event on
// the staff channel, plus an orderReady event on the order's table channel
// when - and only when - the new status is ready.
func (NotificationRouter) RouteStatusChanged(o *order.Order) []Notification {
	notifications := []Notification{
		{Channel: StaffChannel, Name: EventOrderUpdated, Order: o},
	}

	if o.Status() == order.Ready {
		notifications = append(notifications, Notification{
			Channel: TableChannel(o.TableNumber()),
			Name:    EventOrderReady,
			Order:   o,
		})
	}

	return notifications
}

// RouteDelayed routes a stuck-in-preparing escalation: one orderDelayed
// event on the staff channel.
func (NotificationRouter) RouteDelayed(o *order.Order) []Notification {
	return []Notification{
		{Channel: StaffChannel, Name: EventOrderDelayed, Order: o},
	}
}
