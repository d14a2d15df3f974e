// Package config defines the format-agnostic manifest model and the Loader
// interface manifest formats implement.
//
// A manifest declares components by name: which compiled-in class builds
// them, where they mount, what they require and the options they receive.
// The catalog package turns the model into registrations.
package config
