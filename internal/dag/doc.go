// Package dag is the ordering layer of the application. It builds a
// directed dependency graph from flat node specs, certifies the graph
// acyclic, and produces dependency-respecting orderings: the ranked
// sequence, the parallel dependency waves, and the critical path by
// estimated effort.
//
// The package knows nothing about manifests or rendering; it operates on
// plain specs and reports results as input positions.
package dag
