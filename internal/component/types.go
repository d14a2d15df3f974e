package component

import (
	"log/slog"

	"github.com/specialistvlad/componeer/internal/bus"
)

// Instance is one live object created from a Definition. The core treats it
// as opaque; the only capability it looks for is Destroyer.
type Instance any

// Destroyer is implemented by instances that need to release resources when
// they are destroyed.
type Destroyer interface {
	Destroy() error
}

// Params is what a Constructor receives for every instance it builds.
type Params struct {
	// MountPoint is nil for components registered without a selector.
	MountPoint any
	// Options is the definition's option blob, shared by all its instances.
	Options any
	// EventBus is the instance's private view of the shared bus.
	EventBus *bus.Proxy
}

// Constructor builds one instance. A returned error aborts the Init or Make
// call that triggered it.
type Constructor func(Params) (Instance, error)

// Config is a single component registration.
type Config struct {
	// Name is the registry key. When empty it is derived from the
	// constructor's function name.
	Name        string
	Constructor Constructor
	// Selector picks mount points under the context. Empty means a single
	// instance without a mount point.
	Selector string
	Options  any
	// Identify returns the preferred id for a new instance.
	Identify func() string
	// Requires lists components to initialize before this one.
	Requires []string
	// Applies is evaluated once, when the definition is built. A false result
	// disables the definition for its whole life.
	Applies func(*Definition) bool
}

// Discovery enumerates mount points. It is supplied by the host; the core
// does not know what a mount point or a context looks like.
type Discovery interface {
	// FindAll returns the mount points under root matching selector, in
	// document order. Zero matches is not an error.
	FindAll(root any, selector string) ([]any, error)
	// ValidContext reports whether root can be searched.
	ValidContext(root any) bool
	// ValidMountPoint reports whether mp can be handed to a constructor.
	ValidMountPoint(mp any) bool
}

// Observer is notified about instance lifecycle transitions.
type Observer interface {
	InstanceCreated(component, id string)
	InstanceDestroyed(component, id string)
}

// Env carries the collaborators a Definition shares with its registry.
type Env struct {
	Bus       *bus.Bus
	Context   any
	Discovery Discovery
	Logger    *slog.Logger
	Observer  Observer
}
