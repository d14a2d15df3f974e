package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads every manifest under paths, in path order and then file
	// order, and merges them into one Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
