// Package component implements a single registered component type: it
// discovers mount points, builds one instance per match, assigns instance
// ids, and tears instances down together with every bus listener they
// registered.
//
// The package knows nothing about what a mount point is. Hosts supply a
// Discovery that enumerates mount points under a context; internal/dom is
// the implementation used by the componeer binary.
//
// Errors follow a fixed taxonomy. ErrConfig, ErrContext and ErrInstantiation
// are returned for misuse and are meant to surface immediately. Looking up an
// instance id that does not exist is not an error: it is logged as a warning
// and the call does nothing.
package component
