package types

// Cart lifecycle event names.
const (
	EventItemAdded        = "cart.item_added"
	EventUpdated          = "cart.updated"
	EventItemRemoved      = "cart.item_removed"
	EventDetailAdded      = "cart.detail_added"
	EventDetailRemoved    = "cart.detail_removed"
	EventAttributeAdded   = "cart.attribute_added"
	EventAttributeRemoved = "cart.attribute_removed"
	EventStored           = "cart.stored"
	EventRestored         = "cart.restored"
)

// Dispatcher receives fire-and-forget cart lifecycle notifications.
// Emit must not block the calling request; notifications are telemetry,
// not a correctness signal.
type Dispatcher interface {
	Emit(event string, payload any)
}

// DispatcherFunc adapts a plain function to the Dispatcher interface.
type DispatcherFunc func(event string, payload any)

// Emit calls f.
func (f DispatcherFunc) Emit(event string, payload any) { f(event, payload) }

// NopDispatcher discards all notifications.
type NopDispatcher struct{}

// Emit does nothing.
func (NopDispatcher) Emit(string, any) {}
