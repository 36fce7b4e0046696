package qgraph

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/zxkit/zxgraph/pkg/errors"
	"github.com/zxkit/zxgraph/pkg/zx"
)

// EncodeOptions configures document emission.
type EncodeOptions struct {
	// IncludeScalar attaches the diagram's scalar as the top-level
	// scalar field.
	IncludeScalar bool
}

// Encode emits the external JSON document for a diagram, including its
// scalar. See [EncodeWithOptions].
func Encode(g *zx.Graph) ([]byte, error) {
	return EncodeWithOptions(g, EncodeOptions{IncludeScalar: true})
}

// EncodeWithOptions walks the diagram and emits the external document.
//
// Vertices reuse their stored external names when still free, otherwise
// fresh names are minted ("v<i>" for node vertices, "b<i>" for
// boundaries). Hadamard edges are unfolded into an auxiliary stub node at
// the geometric midpoint of their endpoints plus two simple edges.
//
// Wire vertices are emitted input sequence first, then output sequence,
// then any remaining boundaries, so that re-decoding reconstructs the
// same ordered boundary sequences.
//
// Fails with UNKNOWN_KIND when a vertex type has no external
// representation and UNKNOWN_EDGE_KIND for an unrepresentable edge type;
// both indicate a caller bug.
func EncodeWithOptions(g *zx.Graph, opts EncodeOptions) ([]byte, error) {
	enc := &encoder{
		g:     g,
		names: make(map[int]string, g.NumVertices()),
		used:  make(map[string]bool, g.NumVertices()),
	}
	enc.poolV = newNamePool("v", enc.used)
	enc.poolB = newNamePool("b", enc.used)

	doc, err := enc.document(opts)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// WriteFile encodes the diagram and writes the document to path.
func WriteFile(g *zx.Graph, path string) error {
	data, err := Encode(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// encoder holds the working state of a single Encode call.
type encoder struct {
	g     *zx.Graph
	names map[int]string // vertex id -> external name
	used  map[string]bool
	poolV *namePool
	poolB *namePool

	wires jsonObject
	nodes jsonObject
	edges jsonObject
}

func (e *encoder) document(opts EncodeOptions) (*jsonObject, error) {
	e.allocateNames()

	inputs := membership(e.g.Inputs())
	outputs := membership(e.g.Outputs())
	for _, v := range e.boundaryEmitOrder() {
		if err := e.wireEntry(v, inputs[v], outputs[v]); err != nil {
			return nil, err
		}
	}
	for _, v := range e.g.Vertices() {
		if e.g.Type(v) == zx.Boundary {
			continue
		}
		if err := e.nodeEntry(v); err != nil {
			return nil, err
		}
	}
	if err := e.edgeEntries(); err != nil {
		return nil, err
	}

	doc := &jsonObject{}
	wireRaw, err := json.Marshal(&e.wires)
	if err != nil {
		return nil, err
	}
	nodeRaw, err := json.Marshal(&e.nodes)
	if err != nil {
		return nil, err
	}
	edgeRaw, err := json.Marshal(&e.edges)
	if err != nil {
		return nil, err
	}
	doc.SetRaw(secWireVertices, wireRaw)
	doc.SetRaw(secNodeVertices, nodeRaw)
	doc.SetRaw(secUndirEdges, edgeRaw)
	if opts.IncludeScalar {
		raw, err := e.g.Scalar().ExternalJSON()
		if err != nil {
			return nil, err
		}
		doc.SetRaw(secScalar, raw)
	}
	return doc, nil
}

// allocateNames assigns an external name to every vertex in
// vertex-iteration order, reusing stored names when still free.
func (e *encoder) allocateNames() {
	for _, v := range e.g.Vertices() {
		pool := e.poolV
		if e.g.Type(v) == zx.Boundary {
			pool = e.poolB
		}
		e.names[v] = pool.take(e.g.Name(v))
	}
}

// membership builds a presence set from a vertex list.
func membership(vs []int) map[int]bool {
	m := make(map[int]bool, len(vs))
	for _, v := range vs {
		m[v] = true
	}
	return m
}

// boundaryEmitOrder lists boundary vertices: inputs in input order, then
// outputs in output order, then any unflagged boundaries in vertex order.
// Decoding rebuilds the input/output sequences from this key order.
func (e *encoder) boundaryEmitOrder() []int {
	seen := make(map[int]bool)
	var order []int
	add := func(v int) {
		if !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
	}
	for _, v := range e.g.Inputs() {
		add(v)
	}
	for _, v := range e.g.Outputs() {
		add(v)
	}
	for _, v := range e.g.Vertices() {
		if e.g.Type(v) == zx.Boundary {
			add(v)
		}
	}
	return order
}

func (e *encoder) wireEntry(v int, isInput, isOutput bool) error {
	ann := &jsonObject{}
	ann.Set("boundary", true)
	if err := ann.Set("coord", e.coord(v)); err != nil {
		return err
	}
	ann.Set("input", isInput)
	ann.Set("output", isOutput)
	if err := e.copyAnnotations(ann, v); err != nil {
		return err
	}

	entry := &jsonObject{}
	annRaw, err := json.Marshal(ann)
	if err != nil {
		return err
	}
	entry.SetRaw("annotation", annRaw)
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	e.wires.SetRaw(e.names[v], raw)
	return nil
}

func (e *encoder) nodeEntry(v int) error {
	data := &jsonObject{}
	switch e.g.Type(v) {
	case zx.ZSpider:
		// Z is the decode-side default; an absent type means Z.
	case zx.XSpider:
		data.Set("type", typeX)
	case zx.HadamardBox:
		data.Set("type", typeHBox)
		data.Set("is_edge", "false")
	case zx.WInput:
		data.Set("type", typeWInput)
	case zx.WOutput:
		data.Set("type", typeWOutput)
	default:
		return errors.New(errors.ErrCodeUnknownKind,
			"vertex %d: kind %v has no external representation", v, e.g.Type(v))
	}
	if phase := FormatPhase(e.g.Phase(v)); phase != "" {
		data.Set("value", phase)
	}
	if e.g.Ground(v) {
		data.Set("ground", true)
	}

	ann := &jsonObject{}
	if err := ann.Set("coord", e.coord(v)); err != nil {
		return err
	}
	if err := e.copyAnnotations(ann, v); err != nil {
		return err
	}

	entry := &jsonObject{}
	annRaw, err := json.Marshal(ann)
	if err != nil {
		return err
	}
	entry.SetRaw("annotation", annRaw)
	if data.Len() > 0 {
		dataRaw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		entry.SetRaw("data", dataRaw)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	e.nodes.SetRaw(e.names[v], raw)
	return nil
}

// edgeEntries emits one entry per simple or W-IO edge and unfolds each
// Hadamard edge into an auxiliary stub node plus two simple entries.
func (e *encoder) edgeEntries() error {
	i := 0
	next := func() string {
		name := "e" + strconv.Itoa(i)
		i++
		return name
	}
	for _, edge := range e.g.Edges() {
		src, tgt := e.names[edge.S], e.names[edge.T]
		switch edge.Type {
		case zx.SimpleEdge:
			e.edges.SetRaw(next(), mustEdge(src, tgt, ""))
		case zx.WIOEdge:
			e.edges.SetRaw(next(), mustEdge(src, tgt, edgeWIO))
		case zx.HadamardEdge:
			stub, err := e.stubEntry(edge)
			if err != nil {
				return err
			}
			e.edges.SetRaw(next(), mustEdge(src, stub, ""))
			e.edges.SetRaw(next(), mustEdge(tgt, stub, ""))
		default:
			return errors.New(errors.ErrCodeUnknownEdgeKind,
				"edge %d-%d: kind %v has no external representation", edge.S, edge.T, edge.Type)
		}
	}
	return nil
}

// stubEntry mints an auxiliary Hadamard stub node at the geometric
// midpoint of the edge's endpoints and returns its name.
func (e *encoder) stubEntry(edge zx.Edge) (string, error) {
	x1, y1 := e.g.Row(edge.S), -e.g.Qubit(edge.S)
	x2, y2 := e.g.Row(edge.T), -e.g.Qubit(edge.T)

	ann := &jsonObject{}
	if err := ann.Set("coord", []float64{round3((x1 + x2) / 2), round3((y1 + y2) / 2)}); err != nil {
		return "", err
	}
	data := &jsonObject{}
	data.Set("type", typeHBox)
	data.Set("is_edge", "true")

	entry := &jsonObject{}
	annRaw, err := json.Marshal(ann)
	if err != nil {
		return "", err
	}
	dataRaw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	entry.SetRaw("annotation", annRaw)
	entry.SetRaw("data", dataRaw)
	raw, err := json.Marshal(entry)
	if err != nil {
		return "", err
	}

	name := e.poolV.fresh()
	e.nodes.SetRaw(name, raw)
	return name, nil
}

// copyAnnotations emits the vertex's annotation map into ann without
// overwriting keys already present (coord in particular).
func (e *encoder) copyAnnotations(ann *jsonObject, v int) error {
	present := make(map[string]bool, ann.Len())
	for _, entry := range ann.entries {
		present[entry.Key] = true
	}
	for _, key := range e.g.VDataKeys(v) {
		if present[key] {
			continue
		}
		if err := ann.Set(key, e.g.VData(v, key)); err != nil {
			return err
		}
	}
	return nil
}

// coord inverse-maps internal coordinates to the external pair,
// rounding to three decimals for display only.
func (e *encoder) coord(v int) []float64 {
	return []float64{round3(e.g.Row(v)), round3(-e.g.Qubit(v))}
}

func round3(x float64) float64 {
	r := math.Round(x*1000) / 1000
	if r == 0 {
		return 0 // avoid negative zero in output
	}
	return r
}

// mustEdge builds an edge entry value. Marshaling plain strings cannot
// fail, hence no error return.
func mustEdge(src, tgt, typ string) json.RawMessage {
	o := &jsonObject{}
	o.Set("src", src)
	o.Set("tgt", tgt)
	if typ != "" {
		o.Set("type", typ)
	}
	raw, _ := json.Marshal(o)
	return raw
}
