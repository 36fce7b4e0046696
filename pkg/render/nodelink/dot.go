package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/zxkit/zxgraph/pkg/errors"
	"github.com/zxkit/zxgraph/pkg/qgraph"
	"github.com/zxkit/zxgraph/pkg/render"
	"github.com/zxkit/zxgraph/pkg/zx"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Labels includes the external vertex name in node labels.
	// When false, only the phase (if any) is shown.
	Labels bool
	// FixedLayout pins every node to its stored coordinate instead of
	// letting Graphviz place it.
	FixedLayout bool
}

// ToDOT converts a diagram to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered using
// [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Vertex colors and edge styles follow the usual ZX drawing conventions.
// Fails with UNKNOWN_KIND or UNKNOWN_EDGE_KIND when the diagram contains
// a vertex or edge type with no visual mapping.
func ToDOT(g *zx.Graph, opts Options) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	if opts.FixedLayout {
		buf.WriteString("  layout=neato;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fontsize=12];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		attrs, err := nodeAttrs(g, v, opts)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs, err := edgeAttrs(e)
		if err != nil {
			return "", err
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  n%d -- n%d;\n", e.S, e.T)
		} else {
			fmt.Fprintf(&buf, "  n%d -- n%d [%s];\n", e.S, e.T, strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeAttrs(g *zx.Graph, v int, opts Options) ([]string, error) {
	var attrs []string
	switch g.Type(v) {
	case zx.Boundary:
		attrs = append(attrs, "shape=circle", "fillcolor=black", "width=0.1", "label=\"\"")
	case zx.ZSpider:
		attrs = append(attrs, "shape=circle", "fillcolor=\"#ccffcc\"")
	case zx.XSpider:
		attrs = append(attrs, "shape=circle", "fillcolor=\"#ff8888\"")
	case zx.HadamardBox:
		attrs = append(attrs, "shape=square", "fillcolor=\"#ffff00\"", "width=0.25")
	case zx.WInput:
		attrs = append(attrs, "shape=point", "fillcolor=black")
	case zx.WOutput:
		attrs = append(attrs, "shape=triangle", "fillcolor=black")
	default:
		return nil, errors.New(errors.ErrCodeUnknownKind,
			"vertex %d: kind %v has no visual mapping", v, g.Type(v))
	}
	if g.Type(v) != zx.Boundary {
		attrs = append(attrs, fmt.Sprintf("label=%q", nodeLabel(g, v, opts)))
	}
	if g.Ground(v) {
		attrs = append(attrs, "peripheries=2")
	}
	if opts.FixedLayout {
		attrs = append(attrs, fmt.Sprintf("pos=\"%g,%g!\"", g.Row(v), -g.Qubit(v)))
	}
	return attrs, nil
}

func nodeLabel(g *zx.Graph, v int, opts Options) string {
	var parts []string
	if opts.Labels {
		if name := g.Name(v); name != "" {
			parts = append(parts, name)
		}
	}
	if p := g.Phase(v); !p.IsZero() {
		parts = append(parts, phaseLabel(p))
	}
	return strings.Join(parts, "\n")
}

// phaseLabel renders a phase for display, using the plain pi character
// instead of the wire form's escape sequence.
func phaseLabel(p zx.Phase) string {
	return strings.ReplaceAll(qgraph.FormatPhase(p), `\pi`, "π")
}

func edgeAttrs(e zx.Edge) ([]string, error) {
	switch e.Type {
	case zx.SimpleEdge:
		return nil, nil
	case zx.HadamardEdge:
		return []string{"style=dashed", "color=\"#0088ff\""}, nil
	case zx.WIOEdge:
		return []string{"style=bold"}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnknownEdgeKind,
			"edge %d-%d: kind %v has no visual mapping", e.S, e.T, e.Type)
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
