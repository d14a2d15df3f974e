package component

// InstanceProxy stands in for "every live instance of one component". A
// proxy over a missing definition behaves like one with no instances.
type InstanceProxy struct {
	def *Definition
}

// NewInstanceProxy wraps d, which may be nil.
func NewInstanceProxy(d *Definition) *InstanceProxy {
	return &InstanceProxy{def: d}
}

// Definition returns the wrapped definition, or nil.
func (p *InstanceProxy) Definition() *Definition {
	return p.def
}

// Len returns the number of instances a broadcast would reach.
func (p *InstanceProxy) Len() int {
	if p.def == nil {
		return 0
	}
	return p.def.Len()
}

// Broadcast calls fn for every instance in creation order and collects the
// results. The instance set is fixed when Broadcast starts.
func (p *InstanceProxy) Broadcast(fn func(id string, inst Instance) any) []any {
	if p.def == nil {
		return []any{}
	}

	ids := p.def.IDs()
	results := make([]any, 0, len(ids))
	for _, id := range ids {
		results = append(results, fn(id, p.def.instances[id]))
	}
	return results
}

// Invoke calls fn on every instance that implements T and collects the
// results in creation order. Instances that do not implement T yield R's zero
// value, so result positions always line up with the instance order.
func Invoke[T any, R any](p *InstanceProxy, fn func(T) R) []R {
	if p.def == nil {
		return []R{}
	}

	ids := p.def.IDs()
	results := make([]R, 0, len(ids))
	for _, id := range ids {
		var r R
		if target, ok := p.def.instances[id].(T); ok {
			r = fn(target)
		}
		results = append(results, r)
	}
	return results
}
