// Package app contains the core application logic. It loads component
// manifests, resolves them against the compiled-in catalog, mounts the
// components into an HTML document and reports what was created. It is
// decoupled from any specific entrypoint like a CLI.
package app
