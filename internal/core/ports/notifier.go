package ports

import "dispatch/internal/core/domain/model/order"

// Event names the lifecycle notification emitted after each successful
// state transition.
type Event string

const (
	EventOrderCreated      Event = "order_created"
	EventDispatchStarted   Event = "dispatch_started"
	EventDispatchCompleted Event = "dispatch_completed"
	EventOrderReturned     Event = "order_returned"
)

// Audience is one of the fixed subscriber groups notifications fan out to.
// The set is a process-wide constant of the product, not configuration.
type Audience string

const (
	AudienceDispatcher Audience = "dispatcher"
	AudienceAccounting Audience = "accounting"
	AudienceDrivers    Audience = "drivers"
)

// Audiences returns every audience group, in a stable order.
func Audiences() []Audience {
	return []Audience{AudienceDispatcher, AudienceAccounting, AudienceDrivers}
}

// AudienceFromString parses an audience name, reporting whether it is one of
// the fixed groups.
func AudienceFromString(s string) (Audience, bool) {
	for _, a := range Audiences() {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Notifier broadcasts a fully materialized order to every audience group after
// a successful transition. Implementations are purely observational: no
// persistence, no retry, no acknowledgement tracking, and Publish must never
// block or fail the transition that triggered it.
type Notifier interface {
	Publish(event Event, snapshot order.Snapshot)
}

// NopNotifier is a Notifier that drops everything. Useful in tests and as a
// default when no subscriber transport is attached.
type NopNotifier struct{}

func (NopNotifier) Publish(Event, order.Snapshot) {}
