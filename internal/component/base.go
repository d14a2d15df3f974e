package component

import "github.com/specialistvlad/componeer/internal/bus"

// Base is meant to be embedded by component types that want lifecycle hooks.
// Bind it from the constructor with the outer value as self:
//
//	func New(p component.Params) (component.Instance, error) {
//		w := &Widget{}
//		w.Bind(p, w)
//		return w, nil
//	}
//
// self may implement any of OnCreate, OnInit and OnDestroy.
type Base struct {
	MountPoint any
	Options    any
	EventBus   *bus.Proxy

	self any
}

// Creator is called by Bind, before the constructor returns.
type Creator interface {
	OnCreate()
}

// Initializer is called once, when the registry announces the instance.
type Initializer interface {
	OnInit()
}

// Finalizer is called from Destroy.
type Finalizer interface {
	OnDestroy() error
}

// Bind stores p on the base and wires the hooks of self.
func (b *Base) Bind(p Params, self any) {
	b.MountPoint = p.MountPoint
	b.Options = p.Options
	b.EventBus = p.EventBus
	b.self = self

	b.EventBus.Once(bus.EventInstanceInit, func(...any) {
		if init, ok := b.self.(Initializer); ok {
			init.OnInit()
		}
	})

	if c, ok := self.(Creator); ok {
		c.OnCreate()
	}
}

// Destroy runs the OnDestroy hook of self, if it has one.
func (b *Base) Destroy() error {
	if f, ok := b.self.(Finalizer); ok {
		return f.OnDestroy()
	}
	return nil
}
