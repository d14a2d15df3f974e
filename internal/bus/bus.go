package bus

import (
	"sort"
	"sync"
)

// Listener receives the arguments passed to Emit.
type Listener func(args ...any)

// Subscription identifies one registration of a listener on a Bus.
// The zero value never identifies a live subscription.
type Subscription uint64

type entry struct {
	sub Subscription
	fn  Listener
}

// Bus is a named-event publish/subscribe hub. Delivery is synchronous and in
// registration order.
type Bus struct {
	mu        sync.Mutex
	listeners map[string][]entry
	next      Subscription
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{
		listeners: make(map[string][]entry),
	}
}

// On appends fn to the listener list of event. Registering the same func
// twice yields two independent subscriptions.
func (b *Bus) On(event string, fn Listener) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	sub := b.next
	b.listeners[event] = append(b.listeners[event], entry{sub: sub, fn: fn})
	return sub
}

// Once subscribes fn for a single delivery. The subscription is removed
// before fn runs, so a nested Emit of the same event does not reach it again.
func (b *Bus) Once(event string, fn Listener) Subscription {
	var (
		sub   Subscription
		fired bool
	)
	sub = b.On(event, func(args ...any) {
		if fired {
			return
		}
		fired = true
		b.Off(event, sub)
		fn(args...)
	})
	return sub
}

// Off removes subscriptions from event. With handles, the first listener
// matching each handle is removed. Without handles, every listener of event
// is removed. Unknown events and handles are ignored.
func (b *Bus) Off(event string, subs ...Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, ok := b.listeners[event]
	if !ok {
		return
	}

	if len(subs) == 0 {
		delete(b.listeners, event)
		return
	}

	for _, sub := range subs {
		for i, e := range list {
			if e.sub == sub {
				list = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}

	if len(list) == 0 {
		delete(b.listeners, event)
		return
	}
	b.listeners[event] = list
}

// Emit calls every listener of event with args. The listener list is copied
// before the first call; emitting an event nobody listens to is a no-op.
func (b *Bus) Emit(event string, args ...any) {
	b.mu.Lock()
	snapshot := make([]entry, len(b.listeners[event]))
	copy(snapshot, b.listeners[event])
	b.mu.Unlock()

	for _, e := range snapshot {
		e.fn(args...)
	}
}

// Has reports whether sub is currently registered on event.
func (b *Bus) Has(event string, sub Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range b.listeners[event] {
		if e.sub == sub {
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners registered for event.
func (b *Bus) ListenerCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[event])
}

// Events returns the names of all events with at least one listener, sorted.
func (b *Bus) Events() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.listeners))
	for name := range b.listeners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
