package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zxkit/zxgraph/pkg/qgraph"
	"github.com/zxkit/zxgraph/pkg/zx"
)

// newInfoCmd creates the info command, which prints a structural summary
// of a diagram document.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Show diagram statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}
}

// vertexKindOrder fixes the display order of vertex kinds.
var vertexKindOrder = []zx.VertexType{
	zx.Boundary, zx.ZSpider, zx.XSpider, zx.HadamardBox, zx.WInput, zx.WOutput,
}

// edgeKindOrder fixes the display order of edge kinds.
var edgeKindOrder = []zx.EdgeType{zx.SimpleEdge, zx.HadamardEdge, zx.WIOEdge}

func runInfo(cmd *cobra.Command, input string) error {
	g, err := qgraph.ReadFile(input)
	if err != nil {
		return err
	}

	vertexCounts := make(map[zx.VertexType]int)
	phased := 0
	grounds := 0
	for _, v := range g.Vertices() {
		vertexCounts[g.Type(v)]++
		if !g.Phase(v).IsZero() {
			phased++
		}
		if g.Ground(v) {
			grounds++
		}
	}
	edgeCounts := make(map[zx.EdgeType]int)
	for _, e := range g.Edges() {
		edgeCounts[e.Type]++
	}

	var vertexParts []string
	for _, kind := range vertexKindOrder {
		if n := vertexCounts[kind]; n > 0 {
			vertexParts = append(vertexParts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	var edgeParts []string
	for _, kind := range edgeKindOrder {
		if n := edgeCounts[kind]; n > 0 {
			edgeParts = append(edgeParts, fmt.Sprintf("%d %s", n, kind))
		}
	}

	printKeyValue("file", input)
	printKeyValue("vertices", withBreakdown(g.NumVertices(), vertexParts))
	printKeyValue("edges", withBreakdown(g.NumEdges(), edgeParts))
	printKeyValue("inputs", fmt.Sprintf("%d", len(g.Inputs())))
	printKeyValue("outputs", fmt.Sprintf("%d", len(g.Outputs())))
	if phased > 0 {
		printKeyValue("phased", fmt.Sprintf("%d", phased))
	}
	if grounds > 0 {
		printKeyValue("grounds", fmt.Sprintf("%d", grounds))
	}
	if sc := g.Scalar(); !sc.IsOne() {
		raw, err := json.Marshal(sc)
		if err != nil {
			return err
		}
		printKeyValue("scalar", string(raw))
	}
	return nil
}

// withBreakdown formats a total with an optional per-kind breakdown,
// e.g. "5 (3 Z, 2 X)".
func withBreakdown(total int, parts []string) string {
	if len(parts) == 0 {
		return fmt.Sprintf("%d", total)
	}
	return fmt.Sprintf("%d (%s)", total, strings.Join(parts, ", "))
}
