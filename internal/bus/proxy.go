package bus

import "slices"

// Proxy is one instance's view of a shared Bus. It forwards every call to the
// bus and remembers the subscriptions it created, so Cleanup can remove all
// of them even when the instance forgot to unsubscribe.
//
// A Proxy is owned by a single instance and is not safe for concurrent use.
type Proxy struct {
	bus       *Bus
	owner     string
	listeners map[string][]Subscription
}

// NewProxy returns a Proxy over b. owner names the component the proxy
// belongs to and is only used for diagnostics.
func NewProxy(b *Bus, owner string) *Proxy {
	return &Proxy{
		bus:       b,
		owner:     owner,
		listeners: make(map[string][]Subscription),
	}
}

// Owner returns the name of the component this proxy was created for.
func (p *Proxy) Owner() string {
	return p.owner
}

// On subscribes fn on the bus and tracks the subscription.
func (p *Proxy) On(event string, fn Listener) Subscription {
	sub := p.bus.On(event, fn)
	p.listeners[event] = append(p.listeners[event], sub)
	return sub
}

// Once subscribes fn for a single delivery. The subscription is tracked until
// it fires.
func (p *Proxy) Once(event string, fn Listener) Subscription {
	var sub Subscription
	sub = p.bus.Once(event, func(args ...any) {
		p.untrack(event, sub)
		fn(args...)
	})
	p.listeners[event] = append(p.listeners[event], sub)
	return sub
}

// Off removes the given subscriptions from the bus and from the proxy. Called
// without handles it removes every listener this proxy registered for event.
// Handles this proxy does not track are ignored, so listeners registered by
// other proxies are always left alone.
func (p *Proxy) Off(event string, subs ...Subscription) {
	if len(subs) == 0 {
		subs = append([]Subscription(nil), p.listeners[event]...)
	} else {
		subs = p.owned(event, subs)
	}
	if len(subs) == 0 {
		return
	}

	p.bus.Off(event, subs...)
	for _, sub := range subs {
		p.untrack(event, sub)
	}
}

// Emit forwards to the bus.
func (p *Proxy) Emit(event string, args ...any) {
	p.bus.Emit(event, args...)
}

// Cleanup removes every tracked subscription from the bus and empties the
// proxy.
func (p *Proxy) Cleanup() {
	for event, subs := range p.listeners {
		p.bus.Off(event, subs...)
	}
	clear(p.listeners)
}

// Len returns the number of subscriptions currently tracked.
func (p *Proxy) Len() int {
	n := 0
	for _, subs := range p.listeners {
		n += len(subs)
	}
	return n
}

// Tracked returns a copy of the subscriptions tracked for event.
func (p *Proxy) Tracked(event string) []Subscription {
	return append([]Subscription(nil), p.listeners[event]...)
}

// owned keeps the handles of subs tracked by p for event.
func (p *Proxy) owned(event string, subs []Subscription) []Subscription {
	tracked := p.listeners[event]
	var out []Subscription
	for _, sub := range subs {
		if slices.Contains(tracked, sub) {
			out = append(out, sub)
		}
	}
	return out
}

func (p *Proxy) untrack(event string, sub Subscription) {
	subs, ok := p.listeners[event]
	if !ok {
		return
	}
	for i, s := range subs {
		if s == sub {
			subs = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(p.listeners, event)
		return
	}
	p.listeners[event] = subs
}
