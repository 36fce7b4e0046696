package zx

import "fmt"

// VertexType is the structural role of a vertex in the diagram.
type VertexType int

const (
	// Boundary represents an external input or output wire of the diagram.
	// Boundary vertices carry no phase.
	Boundary VertexType = iota
	// ZSpider is a Z (green) spider.
	ZSpider
	// XSpider is an X (red) spider.
	XSpider
	// HadamardBox is an H-box vertex. This is a genuine diagram vertex,
	// distinct from the auxiliary degree-2 stub nodes the external format
	// uses to encode Hadamard edges.
	HadamardBox
	// WInput is the input leg of a W node.
	WInput
	// WOutput is the output leg of a W node.
	WOutput
)

// IsSpider reports whether the vertex type is a Z or X spider.
// Only spiders participate in parallel-edge fusion.
func (t VertexType) IsSpider() bool { return t == ZSpider || t == XSpider }

// String returns a short human-readable name for the vertex type.
func (t VertexType) String() string {
	switch t {
	case Boundary:
		return "boundary"
	case ZSpider:
		return "Z"
	case XSpider:
		return "X"
	case HadamardBox:
		return "H"
	case WInput:
		return "W_input"
	case WOutput:
		return "W_output"
	default:
		return fmt.Sprintf("VertexType(%d)", int(t))
	}
}

// EdgeType distinguishes the kinds of connective between two vertices.
type EdgeType int

const (
	// SimpleEdge is a plain wire.
	SimpleEdge EdgeType = iota
	// HadamardEdge is a wire with a Hadamard gate on it. The external
	// format has no edge-level representation for it and encodes it as an
	// auxiliary degree-2 node instead.
	HadamardEdge
	// WIOEdge connects the two legs of a W node.
	WIOEdge
)

// String returns a short human-readable name for the edge type.
func (t EdgeType) String() string {
	switch t {
	case SimpleEdge:
		return "simple"
	case HadamardEdge:
		return "hadamard"
	case WIOEdge:
		return "w_io"
	default:
		return fmt.Sprintf("EdgeType(%d)", int(t))
	}
}
