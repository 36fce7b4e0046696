package qgraph

import (
	"testing"

	"github.com/zxkit/zxgraph/pkg/zx"
)

// buildBellPair constructs a small diagram exercising every structural
// feature: ordered boundaries, both spider colors, a phase, a Hadamard
// edge, annotations and a non-trivial scalar.
func buildBellPair() *zx.Graph {
	g := zx.NewGraph()
	i0 := g.AddVertex(zx.Boundary, 0, 0)
	i1 := g.AddVertex(zx.Boundary, 1, 0)
	z := g.AddVertex(zx.ZSpider, 0, 1)
	x := g.AddVertex(zx.XSpider, 1, 1)
	o0 := g.AddVertex(zx.Boundary, 0, 2)
	o1 := g.AddVertex(zx.Boundary, 1, 2)

	g.SetPhase(z, zx.NewPhase(1, 2))
	g.SetVData(x, "label", "copy")
	g.SetInputs([]int{i0, i1})
	g.SetOutputs([]int{o0, o1})

	g.AddEdge(g.EdgeKey(i0, z), zx.SimpleEdge)
	g.AddEdge(g.EdgeKey(i1, x), zx.SimpleEdge)
	g.AddEdge(g.EdgeKey(z, x), zx.HadamardEdge)
	g.AddEdge(g.EdgeKey(z, o0), zx.SimpleEdge)
	g.AddEdge(g.EdgeKey(x, o1), zx.SimpleEdge)

	g.Scalar().Power2 = -1
	g.Scalar().AddPhase(zx.NewPhase(1, 4))
	return g
}

// edgeMultiset collects edges keyed by endpoint names so two graphs can
// be compared independently of vertex numbering.
func edgeMultiset(t *testing.T, g *zx.Graph, names map[int]string) map[string]int {
	t.Helper()
	ms := make(map[string]int)
	for _, e := range g.Edges() {
		a, b := names[e.S], names[e.T]
		if b < a {
			a, b = b, a
		}
		ms[a+"|"+b+"|"+e.Type.String()]++
	}
	return ms
}

func externalNames(g *zx.Graph) map[int]string {
	names := make(map[int]string)
	for _, v := range g.Vertices() {
		names[v] = g.Name(v)
	}
	return names
}

func TestRoundTripPreservesStructure(t *testing.T) {
	g := buildBellPair()

	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.NumVertices() != g.NumVertices() {
		t.Errorf("NumVertices = %d, want %d", got.NumVertices(), g.NumVertices())
	}
	if got.NumEdges() != g.NumEdges() {
		t.Errorf("NumEdges = %d, want %d", got.NumEdges(), g.NumEdges())
	}

	// Find the lone phased Z spider in the decoded graph.
	var phased []int
	for _, v := range got.Vertices() {
		if got.Type(v) == zx.ZSpider && !got.Phase(v).IsZero() {
			phased = append(phased, v)
		}
	}
	if len(phased) != 1 {
		t.Fatalf("phased Z spiders = %d, want 1", len(phased))
	}
	if p := got.Phase(phased[0]); p != zx.NewPhase(1, 2) {
		t.Errorf("phase = %v, want 1/2", p)
	}

	var labeled []int
	for _, v := range got.Vertices() {
		if got.VData(v, "label") == "copy" {
			labeled = append(labeled, v)
		}
	}
	if len(labeled) != 1 || got.Type(labeled[0]) != zx.XSpider {
		t.Errorf("labeled X spider not recovered: %v", labeled)
	}

	if len(got.Inputs()) != 2 || len(got.Outputs()) != 2 {
		t.Fatalf("boundaries = %d in / %d out, want 2/2",
			len(got.Inputs()), len(got.Outputs()))
	}

	sc := got.Scalar()
	if sc.Power2 != -1 || sc.Phase != zx.NewPhase(1, 4) {
		t.Errorf("scalar = %+v, want power2 -1 phase 1/4", sc)
	}
}

func TestRoundTripBoundaryOrder(t *testing.T) {
	// Input and output sequences survive a full cycle even when they
	// disagree with vertex insertion order.
	g := zx.NewGraph()
	b0 := g.AddVertex(zx.Boundary, 0, 0)
	b1 := g.AddVertex(zx.Boundary, 1, 0)
	b2 := g.AddVertex(zx.Boundary, 2, 0)
	g.SetInputs([]int{b2, b0})
	g.SetOutputs([]int{b1})

	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	ins := got.Inputs()
	if len(ins) != 2 {
		t.Fatalf("inputs = %v", ins)
	}
	// b2 was named first in the input sequence, so it decodes first.
	if got.Qubit(ins[0]) != 2 || got.Qubit(ins[1]) != 0 {
		t.Errorf("input qubits = [%v %v], want [2 0]",
			got.Qubit(ins[0]), got.Qubit(ins[1]))
	}
	outs := got.Outputs()
	if len(outs) != 1 || got.Qubit(outs[0]) != 1 {
		t.Errorf("outputs = %v", outs)
	}
}

func TestRoundTripHadamardFoldUnfold(t *testing.T) {
	g := zx.NewGraph()
	a := g.AddVertex(zx.ZSpider, 0, 0)
	b := g.AddVertex(zx.XSpider, 0, 2)
	g.AddEdge(g.EdgeKey(a, b), zx.HadamardEdge)

	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	// The stub folds back into a single typed edge.
	if got.NumVertices() != 2 {
		t.Errorf("NumVertices = %d, want 2", got.NumVertices())
	}
	edges := got.Edges()
	if len(edges) != 1 || edges[0].Type != zx.HadamardEdge {
		t.Errorf("edges = %v, want one hadamard edge", edges)
	}
}

func TestRoundTripReachesFixpoint(t *testing.T) {
	// Decoded vertices carry their external names and the pools reuse
	// them, so after one normalizing cycle the encoding is byte-stable.
	g := buildBellPair()

	first, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	mid, err := Decode(first)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	second, err := Encode(mid)
	if err != nil {
		t.Fatalf("Encode again: %v", err)
	}
	mid2, err := Decode(second)
	if err != nil {
		t.Fatalf("Decode again: %v", err)
	}
	third, err := Encode(mid2)
	if err != nil {
		t.Fatalf("Encode third: %v", err)
	}
	if string(second) != string(third) {
		t.Errorf("encoding not stable after one cycle:\nsecond: %s\nthird:  %s", second, third)
	}
}

func TestRoundTripEdgesByName(t *testing.T) {
	g := buildBellPair()

	data, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	// Names assigned on encode survive decode, so both graphs expose the
	// same name-keyed edge multiset apart from the Hadamard stub fold.
	want := edgeMultiset(t, got, externalNames(got))
	again, err := Encode(got)
	if err != nil {
		t.Fatalf("Encode decoded: %v", err)
	}
	final, err := Decode(again)
	if err != nil {
		t.Fatalf("Decode again: %v", err)
	}
	gotMS := edgeMultiset(t, final, externalNames(final))

	if len(want) != len(gotMS) {
		t.Fatalf("edge multisets differ: %v vs %v", want, gotMS)
	}
	for k, n := range want {
		if gotMS[k] != n {
			t.Errorf("edge %q count = %d, want %d", k, gotMS[k], n)
		}
	}
}
