// Package dag models the `requires` relationships between registered
// components as a directed graph. An edge from A to B means B requires A.
//
// The registry itself resolves `requires` by plain recursion and never looks
// at this graph; the graph exists so callers can reject cyclic manifests and
// print a dependency-first order before anything is initialized.
package dag
