package zx

import (
	"errors"
	"slices"
	"sort"
)

var (
	// ErrUnknownVertex is returned when an operation references a vertex
	// id that does not exist in the graph.
	ErrUnknownVertex = errors.New("unknown vertex")
)

// vertex is the attribute record for a single vertex.
type vertex struct {
	typ    VertexType
	qubit  float64 // lane coordinate
	row    float64 // depth coordinate
	phase  Phase
	ground bool
	name   string         // stable external name, empty if never serialized
	data   map[string]any // open annotation map, lazily allocated
}

// Edge is an undirected typed edge. S and T are vertex ids with S <= T.
type Edge struct {
	S, T int
	Type EdgeType
}

// EdgeKey identifies an unordered vertex pair. Construct with
// [Graph.EdgeKey] so that S <= T always holds.
type EdgeKey struct {
	S, T int
}

// Graph is the internal diagram: vertices, typed edges, ordered boundary
// sequences and a scalar. The zero value is not usable; use [NewGraph].
type Graph struct {
	vertices map[int]*vertex
	order    []int // vertex ids in insertion order
	nextID   int
	edges    []Edge
	inputs   []int
	outputs  []int
	scalar   Scalar
}

// NewGraph creates an empty diagram with scalar 1.
func NewGraph() *Graph {
	return &Graph{vertices: make(map[int]*vertex)}
}

// AddVertex adds a vertex of the given type at (qubit, row) and returns
// its id. Ids are dense and count up from 0 in insertion order.
func (g *Graph) AddVertex(t VertexType, qubit, row float64) int {
	id := g.nextID
	g.nextID++
	g.vertices[id] = &vertex{typ: t, qubit: qubit, row: row}
	g.order = append(g.order, id)
	return id
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Vertices returns all vertex ids in insertion order.
// The order is stable across calls, which keeps encoding deterministic.
func (g *Graph) Vertices() []int { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// HasVertex reports whether the vertex id exists.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.vertices[v]
	return ok
}

func (g *Graph) vertex(v int) *vertex {
	vd, ok := g.vertices[v]
	if !ok {
		panic("zx: unknown vertex id")
	}
	return vd
}

// Type returns the vertex type.
func (g *Graph) Type(v int) VertexType { return g.vertex(v).typ }

// SetType sets the vertex type.
func (g *Graph) SetType(v int, t VertexType) { g.vertex(v).typ = t }

// Qubit returns the lane coordinate of the vertex.
func (g *Graph) Qubit(v int) float64 { return g.vertex(v).qubit }

// Row returns the depth coordinate of the vertex.
func (g *Graph) Row(v int) float64 { return g.vertex(v).row }

// Phase returns the vertex phase. It is meaningless for boundaries.
func (g *Graph) Phase(v int) Phase { return g.vertex(v).phase }

// SetPhase sets the vertex phase.
func (g *Graph) SetPhase(v int, p Phase) { g.vertex(v).phase = p }

// Ground reports whether the vertex carries the ground flag.
func (g *Graph) Ground(v int) bool { return g.vertex(v).ground }

// SetGround sets the ground flag.
func (g *Graph) SetGround(v int, ground bool) { g.vertex(v).ground = ground }

// Name returns the vertex's stable external name, or "" if it has none.
func (g *Graph) Name(v int) string { return g.vertex(v).name }

// SetName records the vertex's stable external name. It is used only for
// round-tripping identity through the external format.
func (g *Graph) SetName(v int, name string) { g.vertex(v).name = name }

// SetVData attaches an annotation value to the vertex. Values are
// arbitrary JSON-representable data the codec does not interpret.
func (g *Graph) SetVData(v int, key string, value any) {
	vd := g.vertex(v)
	if vd.data == nil {
		vd.data = make(map[string]any)
	}
	vd.data[key] = value
}

// VData returns the annotation value for key, or nil if absent.
func (g *Graph) VData(v int, key string) any { return g.vertex(v).data[key] }

// VDataKeys returns the vertex's annotation keys in sorted order.
func (g *Graph) VDataKeys(v int) []string {
	vd := g.vertex(v)
	keys := make([]string, 0, len(vd.data))
	for k := range vd.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetInputs replaces the ordered input boundary sequence.
// The order is semantically load-bearing: it fixes which boundary vertex
// corresponds to which external wire.
func (g *Graph) SetInputs(vs []int) { g.inputs = slices.Clone(vs) }

// Inputs returns the ordered input boundary sequence.
func (g *Graph) Inputs() []int { return slices.Clone(g.inputs) }

// SetOutputs replaces the ordered output boundary sequence.
func (g *Graph) SetOutputs(vs []int) { g.outputs = slices.Clone(vs) }

// Outputs returns the ordered output boundary sequence.
func (g *Graph) Outputs() []int { return slices.Clone(g.outputs) }

// Scalar returns the diagram's scalar for inspection or mutation.
func (g *Graph) Scalar() *Scalar { return &g.scalar }

// SetScalar replaces the diagram's scalar.
func (g *Graph) SetScalar(s Scalar) { g.scalar = s }

// EdgeKey returns the unordered pair key for two vertex ids.
func (g *Graph) EdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{S: a, T: b}
}

// AddEdge inserts a single edge of the given type between the pair.
// Parallel edges are allowed; canonicalization is the business of
// [Graph.AddEdgeTable].
func (g *Graph) AddEdge(k EdgeKey, t EdgeType) error {
	if !g.HasVertex(k.S) || !g.HasVertex(k.T) {
		return ErrUnknownVertex
	}
	g.edges = append(g.edges, Edge{S: k.S, T: k.T, Type: t})
	return nil
}

// Degree returns the number of edges incident to the vertex.
// Self-loops count twice.
func (g *Graph) Degree(v int) int {
	n := 0
	for _, e := range g.edges {
		if e.S == v {
			n++
		}
		if e.T == v {
			n++
		}
	}
	return n
}

// EdgesBetween returns the edges connecting the unordered pair.
func (g *Graph) EdgesBetween(k EdgeKey) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.S == k.S && e.T == k.T {
			out = append(out, e)
		}
	}
	return out
}

// AddEdgeTable batch-inserts edges from a pair-count accumulation map.
// For each pair, counts[0] is the number of accumulated simple edges and
// counts[1] the number of accumulated Hadamard edges.
//
// Parallel edges between spiders are canonicalized under the calculus's
// fusion rules before insertion:
//
//   - same-colored spiders: parallel simple edges fuse into one; Hadamard
//     edges cancel pairwise (each removed pair contributes 1/2, tracked as
//     Power2 -= 2 on the scalar).
//   - differently-colored spiders: the dual rule. Simple edges cancel
//     pairwise, parallel Hadamard edges fuse into one.
//
// Pairs with a non-spider endpoint (boundary, H-box, W legs) are inserted
// verbatim. Pairs are processed in ascending key order so insertion order
// is deterministic.
func (g *Graph) AddEdgeTable(table map[EdgeKey][2]int) error {
	keys := make([]EdgeKey, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].S != keys[j].S {
			return keys[i].S < keys[j].S
		}
		return keys[i].T < keys[j].T
	})

	for _, k := range keys {
		if !g.HasVertex(k.S) || !g.HasVertex(k.T) {
			return ErrUnknownVertex
		}
		simple, hadamard := table[k][0], table[k][1]
		t1, t2 := g.Type(k.S), g.Type(k.T)

		switch {
		case t1.IsSpider() && t2.IsSpider() && t1 == t2:
			if pairs := hadamard / 2; pairs > 0 {
				g.scalar.AddPower2(-2 * pairs)
			}
			hadamard %= 2
			if simple > 1 {
				simple = 1
			}
		case t1.IsSpider() && t2.IsSpider():
			if pairs := simple / 2; pairs > 0 {
				g.scalar.AddPower2(-2 * pairs)
			}
			simple %= 2
			if hadamard > 1 {
				hadamard = 1
			}
		}

		for i := 0; i < simple; i++ {
			g.edges = append(g.edges, Edge{S: k.S, T: k.T, Type: SimpleEdge})
		}
		for i := 0; i < hadamard; i++ {
			g.edges = append(g.edges, Edge{S: k.S, T: k.T, Type: HadamardEdge})
		}
	}
	return nil
}
