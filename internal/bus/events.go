package bus

// Event names that are part of the public contract between the registry and
// component code.
const (
	// EventInstanceInit is emitted right after an instance is created.
	// Payload: (mountPoint, options), or (options) for mount-less components.
	EventInstanceInit = "instance:init"

	// EventInstanceDestroy is reserved for component code. The registry never
	// emits it because the shared bus would deliver it to every instance.
	EventInstanceDestroy = "instance:destroy"

	// EventComponentInitialized is emitted by the registry once per
	// InitComponent call. Payload: (componentName).
	EventComponentInitialized = "componentInitialized"
)
