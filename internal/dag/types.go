package dag

import "sync"

// Graph is a collection of nodes and their dependencies.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects nodes and order.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order keeps node IDs in insertion order so every traversal is
	// deterministic.
	order []string
}

// node represents a single vertex in the graph. Edges are kept as ordered ID
// lists; deps are predecessors, dependents are successors.
type node struct {
	id         string
	deps       []string
	dependents []string
}
