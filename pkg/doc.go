// Package pkg provides the core libraries for zxgraph diagram tooling.
//
// # Overview
//
// zxgraph works with ZX-calculus diagrams serialized in the Quantomatic
// JSON format. The pkg directory is organized into five areas:
//
//  1. [zx] - The diagram structure (vertices, edges, phases, scalar)
//  2. [qgraph] - The JSON codec between documents and diagrams
//  3. [render] - Visualization (DOT/SVG/PNG/PDF via Graphviz)
//  4. [cache] - Artifact caching for rendered outputs
//  5. [errors], [buildinfo] - Shared error codes and version info
//
// # Architecture
//
// The typical data flow through zxgraph:
//
//	JSON document
//	         ↓
//	    [qgraph] package (decode: fold Hadamard stubs, map coordinates)
//	         ↓
//	    [zx] package (diagram structure + edge fusion)
//	         ↓
//	    [render/nodelink] package (DOT generation + Graphviz)
//	         ↓
//	    SVG/PDF/PNG output
//
// Encoding runs the first two stages in reverse and is lossless for
// every structural attribute the format can carry.
//
// [zx]: github.com/zxkit/zxgraph/pkg/zx
// [qgraph]: github.com/zxkit/zxgraph/pkg/qgraph
// [render]: github.com/zxkit/zxgraph/pkg/render
// [cache]: github.com/zxkit/zxgraph/pkg/cache
// [errors]: github.com/zxkit/zxgraph/pkg/errors
// [buildinfo]: github.com/zxkit/zxgraph/pkg/buildinfo
package pkg
