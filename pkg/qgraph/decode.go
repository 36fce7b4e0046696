package qgraph

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/zxkit/zxgraph/pkg/errors"
	"github.com/zxkit/zxgraph/pkg/zx"
)

// Document section and attribute key names.
const (
	secNodeVertices = "node_vertices"
	secWireVertices = "wire_vertices"
	secUndirEdges   = "undir_edges"
	secScalar       = "scalar"

	typeZ       = "Z"
	typeX       = "X"
	typeHBox    = "hadamard"
	typeWInput  = "W_input"
	typeWOutput = "W_output"
	edgeWIO     = "w_io"
)

// nodeAttr is the external attribute record of a node vertex.
type nodeAttr struct {
	Annotation map[string]json.RawMessage `json:"annotation"`
	Data       *nodeData                  `json:"data"`
}

// nodeData is the typed payload of a node vertex.
type nodeData struct {
	Type   *string `json:"type"`
	Value  *string `json:"value"`
	Ground any     `json:"ground"`
	IsEdge string  `json:"is_edge"`
}

// isHadamardStub reports whether the node encodes a Hadamard connective
// rather than a diagram vertex.
func (a *nodeAttr) isHadamardStub() bool {
	return a.Data != nil && a.Data.Type != nil && *a.Data.Type == typeHBox &&
		a.Data.IsEdge == "true"
}

// wireAttr is the external attribute record of a boundary (wire) vertex.
type wireAttr struct {
	Annotation map[string]json.RawMessage `json:"annotation"`
}

// edgeAttr is the external attribute record of an undirected edge.
type edgeAttr struct {
	Src  string `json:"src"`
	Tgt  string `json:"tgt"`
	Type string `json:"type"`
}

// hadamardStub tracks an external Hadamard-connective node while its two
// neighbors are being discovered. It never becomes a vertex: once both
// neighbors are known it contributes exactly one Hadamard edge.
type hadamardStub struct {
	name      string
	neighbors []int
}

// decoder holds the working state of a single Decode call.
type decoder struct {
	g       *zx.Graph
	names   map[string]int           // external name -> vertex id
	stubs   []*hadamardStub          // in document order
	stubIdx map[string]*hadamardStub // external name -> stub
	inputs  []int
	outputs []int
	table   map[zx.EdgeKey][2]int // pair -> (simple count, hadamard count)
}

// Decode parses an external JSON document into a fresh diagram.
//
// Failure modes: INVALID_FORMAT (malformed JSON, missing coordinates,
// unknown edge endpoints), INVALID_PHASE (bad phase text),
// UNSUPPORTED_TYPE (unrecognized vertex kind), MALFORMED_HADAMARD (a
// Hadamard stub referenced by a number of edges other than two) and
// INVALID_SCALAR. No partial diagram is returned on failure.
func Decode(data []byte) (*zx.Graph, error) {
	top, err := parseObject(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse document")
	}

	d := &decoder{
		g:       zx.NewGraph(),
		names:   make(map[string]int),
		stubIdx: make(map[string]*hadamardStub),
		table:   make(map[zx.EdgeKey][2]int),
	}

	var nodeSec, wireSec, edgeSec []objEntry
	var scalarRaw json.RawMessage
	for _, e := range top {
		switch e.Key {
		case secNodeVertices:
			if nodeSec, err = parseObject(e.Val); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", secNodeVertices)
			}
		case secWireVertices:
			if wireSec, err = parseObject(e.Val); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", secWireVertices)
			}
		case secUndirEdges:
			if edgeSec, err = parseObject(e.Val); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", secUndirEdges)
			}
		case secScalar:
			scalarRaw = e.Val
		}
	}

	for _, e := range nodeSec {
		if err := d.addNode(e.Key, e.Val); err != nil {
			return nil, err
		}
	}
	for _, e := range wireSec {
		if err := d.addWire(e.Key, e.Val); err != nil {
			return nil, err
		}
	}
	d.g.SetInputs(d.inputs)
	d.g.SetOutputs(d.outputs)

	for _, e := range edgeSec {
		if err := d.addEdge(e.Key, e.Val); err != nil {
			return nil, err
		}
	}
	if err := d.foldStubs(); err != nil {
		return nil, err
	}

	if scalarRaw != nil {
		s, err := zx.ParseScalar(scalarRaw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScalar, err, "parse scalar")
		}
		d.g.SetScalar(s)
	}

	if err := d.g.AddEdgeTable(d.table); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "insert edge table")
	}
	return d.g, nil
}

// DecodeString parses a document given as a string.
func DecodeString(s string) (*zx.Graph, error) {
	return Decode([]byte(s))
}

// ReadFile reads and decodes the document at path.
// The error wraps the underlying cause with the file path for context.
func ReadFile(path string) (*zx.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	g, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "decode %s", path)
	}
	return g, nil
}

// addNode processes one node_vertices entry: either registers a Hadamard
// stub or creates a vertex with kind, phase, ground flag and annotations.
func (d *decoder) addNode(name string, raw json.RawMessage) error {
	var attr nodeAttr
	if err := json.Unmarshal(raw, &attr); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "node %s", name)
	}
	if attr.isHadamardStub() {
		stub := &hadamardStub{name: name}
		d.stubs = append(d.stubs, stub)
		d.stubIdx[name] = stub
		return nil
	}

	qubit, row, err := parseCoord(attr.Annotation, name)
	if err != nil {
		return err
	}
	v := d.g.AddVertex(zx.ZSpider, qubit, row)
	d.g.SetName(v, name)
	d.names[name] = v

	if attr.Data != nil {
		data := attr.Data
		switch {
		case data.Type == nil || *data.Type == typeZ:
			// Z is the default
		case *data.Type == typeX:
			d.g.SetType(v, zx.XSpider)
		case *data.Type == typeHBox:
			d.g.SetType(v, zx.HadamardBox)
		case *data.Type == typeWInput:
			d.g.SetType(v, zx.WInput)
		case *data.Type == typeWOutput:
			d.g.SetType(v, zx.WOutput)
		default:
			return errors.New(errors.ErrCodeUnsupportedType,
				"node %s: unsupported type %q", name, *data.Type)
		}
		if data.Value != nil {
			phase, err := ParsePhase(*data.Value)
			if err != nil {
				return err
			}
			d.g.SetPhase(v, phase)
		}
		if truthy(data.Ground) {
			d.g.SetGround(v, true)
		}
	}

	return d.copyAnnotations(v, attr.Annotation, "coord")
}

// addWire processes one wire_vertices entry: creates a Boundary vertex
// and appends it to the input/output sequences when flagged. The append
// order is the document key order of the section.
func (d *decoder) addWire(name string, raw json.RawMessage) error {
	var attr wireAttr
	if err := json.Unmarshal(raw, &attr); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "wire %s", name)
	}
	qubit, row, err := parseCoord(attr.Annotation, name)
	if err != nil {
		return err
	}
	v := d.g.AddVertex(zx.Boundary, qubit, row)
	d.g.SetName(v, name)
	d.names[name] = v

	if truthy(rawToAny(attr.Annotation["input"])) {
		d.inputs = append(d.inputs, v)
	}
	if truthy(rawToAny(attr.Annotation["output"])) {
		d.outputs = append(d.outputs, v)
	}
	return d.copyAnnotations(v, attr.Annotation, "boundary", "coord", "input", "output")
}

// addEdge processes one undir_edges entry, folding Hadamard stubs and
// accumulating parallel simple edges into the pair-count table.
func (d *decoder) addEdge(name string, raw json.RawMessage) error {
	var attr edgeAttr
	if err := json.Unmarshal(raw, &attr); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "edge %s", name)
	}

	s1, isStub1 := d.stubIdx[attr.Src]
	s2, isStub2 := d.stubIdx[attr.Tgt]
	switch {
	case isStub1 && isStub2:
		// A wire directly between two Hadamard connectives: synthesize a
		// phase-free Z vertex between them.
		v := d.g.AddVertex(zx.ZSpider, -1, -1)
		fresh := "v" + strconv.Itoa(len(d.names))
		d.g.SetName(v, fresh)
		d.names[fresh] = v
		s1.neighbors = append(s1.neighbors, v)
		s2.neighbors = append(s2.neighbors, v)
		return nil
	case isStub1:
		v, err := d.endpoint(name, attr.Tgt)
		if err != nil {
			return err
		}
		s1.neighbors = append(s1.neighbors, v)
		return nil
	case isStub2:
		v, err := d.endpoint(name, attr.Src)
		if err != nil {
			return err
		}
		s2.neighbors = append(s2.neighbors, v)
		return nil
	}

	v1, err := d.endpoint(name, attr.Src)
	if err != nil {
		return err
	}
	v2, err := d.endpoint(name, attr.Tgt)
	if err != nil {
		return err
	}
	if attr.Type == edgeWIO {
		// W legs bypass count accumulation entirely.
		return d.g.AddEdge(d.g.EdgeKey(v1, v2), zx.WIOEdge)
	}
	key := d.g.EdgeKey(v1, v2)
	counts := d.table[key]
	counts[0]++
	d.table[key] = counts
	return nil
}

// endpoint resolves an external node name to a vertex id.
func (d *decoder) endpoint(edge, name string) (int, error) {
	v, ok := d.names[name]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidFormat,
			"edge %s: unknown endpoint %q", edge, name)
	}
	return v, nil
}

// foldStubs converts every fully-populated Hadamard stub into a hadamard
// count on its neighbor pair. A stub with a degree other than 2 is not
// expressible as an edge in the internal model.
func (d *decoder) foldStubs() error {
	for _, stub := range d.stubs {
		if len(stub.neighbors) != 2 {
			return errors.New(errors.ErrCodeMalformedHadamard,
				"hadamard node %s has degree %d, want 2", stub.name, len(stub.neighbors))
		}
		key := d.g.EdgeKey(stub.neighbors[0], stub.neighbors[1])
		counts := d.table[key]
		counts[1]++
		d.table[key] = counts
	}
	return nil
}

// copyAnnotations stores every annotation value on the vertex except the
// structurally interpreted keys.
func (d *decoder) copyAnnotations(v int, ann map[string]json.RawMessage, skip ...string) error {
	for key, raw := range ann {
		skipped := false
		for _, s := range skip {
			if key == s {
				skipped = true
				break
			}
		}
		if skipped {
			continue
		}
		d.g.SetVData(v, key, rawToAny(raw))
	}
	return nil
}

// parseCoord extracts the geometric coordinate pair and maps it to the
// internal system: qubit = -cy, row = cx.
func parseCoord(ann map[string]json.RawMessage, name string) (qubit, row float64, err error) {
	raw, ok := ann["coord"]
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidFormat, "node %s: missing coord", name)
	}
	var coord []float64
	if err := json.Unmarshal(raw, &coord); err != nil || len(coord) < 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidFormat, "node %s: malformed coord", name)
	}
	return -coord[1], coord[0], nil
}

// rawToAny decodes a raw JSON value into its generic Go form.
// Invalid or absent values decode to nil.
func rawToAny(raw json.RawMessage) any {
	if raw == nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// truthy mirrors the loose truthiness of the original tooling: false,
// nil, zero, empty string/array/object are false, everything else true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}
