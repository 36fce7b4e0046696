// Package zx implements the internal diagram structure for ZX-calculus
// port-graphs: typed vertices with phases and positions, typed undirected
// edges, ordered boundary sequences, and a global scalar factor.
//
// The package is the storage and query layer consumed by the qgraph codec
// (see [github.com/zxkit/zxgraph/pkg/qgraph]) and the nodelink renderer.
// It performs no rewriting or simplification beyond the parallel-edge
// fusion applied by [Graph.AddEdgeTable] during batch insertion.
//
// # Structure
//
// A [Graph] owns its vertices and edges exclusively. Vertex identifiers are
// dense ints handed out in insertion order; [Graph.Vertices] and
// [Graph.Edges] iterate in that order, which makes encoding deterministic.
//
// # Concurrency
//
// Graph is not safe for concurrent mutation without external
// synchronization. Distinct Graph instances are fully independent.
package zx
