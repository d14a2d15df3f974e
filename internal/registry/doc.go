// Package registry owns the component definitions of one application and the
// event bus they share.
//
// A Registry resolves `requires` before initializing a component, exposes bulk
// init, destroy and recreate operations, and hands out broadcast proxies over
// every live instance of a component. It is driven from a single goroutine.
//
// The `requires` recursion in InitComponent is unguarded. Callers that load
// registrations from untrusted manifests should run CheckRequires first,
// which rejects cycles using the dag package.
package registry
