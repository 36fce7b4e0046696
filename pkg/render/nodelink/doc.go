// Package nodelink renders diagrams as traditional node-link drawings.
//
// # Overview
//
// This package produces undirected graph visualizations using Graphviz,
// following the usual ZX-calculus drawing conventions: Z spiders are green
// circles, X spiders red circles, H-boxes yellow squares and boundaries
// small black dots. Hadamard edges are drawn dashed and blue.
//
// # Usage
//
// Convert a diagram to DOT format, then render to SVG:
//
//	dot, err := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Labels: when true, node labels include the external name alongside
//     the phase
//   - FixedLayout: when true, nodes are pinned to their stored coordinates
//     (rendered with neato -n semantics)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
