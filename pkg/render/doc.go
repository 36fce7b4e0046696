// Package render provides output conversion for diagram visualizations.
//
// # Overview
//
// This package contains the generic pieces of the rendering pipeline:
//
//   - Format conversion (SVG to PDF/PNG)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders diagrams as undirected graphs using
// Graphviz, with spider colors and edge styles following the usual
// ZX-calculus drawing conventions.
//
//	dot, err := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/zxkit/zxgraph/pkg/render/nodelink
package render
