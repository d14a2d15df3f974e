package component

import "errors"

var (
	// ErrConfig reports malformed registration input. It is a programmer
	// error and is never recovered internally.
	ErrConfig = errors.New("invalid component configuration")

	// ErrContext reports a mount context rejected by the discovery
	// collaborator.
	ErrContext = errors.New("invalid mount context")

	// ErrInstantiation reports an instance that could not be built because the
	// mount point is malformed or the definition has no constructor.
	ErrInstantiation = errors.New("cannot instantiate component")
)
