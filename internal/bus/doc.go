// Package bus provides the synchronous publish/subscribe hub shared by all
// components of a registry, and the per-instance Proxy that tracks what an
// instance subscribed so it can be torn down mechanically.
//
// Listeners are plain funcs. Because Go funcs are not comparable, every
// subscription is identified by the Subscription handle returned from On or
// Once, and Off takes handles rather than callbacks.
//
// Emit always iterates a snapshot of the listener list taken when it is
// called: a listener that subscribes or unsubscribes during an emission does
// not change who receives that emission.
package bus
