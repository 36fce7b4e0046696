// Package qgraph implements the lossless, bidirectional codec between the
// quanto/qgraph JSON interchange format and the internal [zx.Graph]
// diagram structure.
//
// The two representations disagree on one structural point: the external
// format has no edge-level encoding for Hadamard connectives and instead
// inserts an auxiliary degree-2 node tagged "hadamard"/"is_edge", while
// the internal model uses a typed edge. [Decode] folds those stub nodes
// into Hadamard edges; [Encode] unfolds Hadamard edges back into stub
// nodes at the geometric midpoint of their endpoints.
//
// Decoding then re-encoding reproduces an equivalent diagram: same
// topology, vertex types, phases, boundary order and scalar, though node
// names may be reassigned when the original names are unavailable.
//
// # Format
//
// A document is a JSON object with optional sections:
//
//	{
//	  "wire_vertices": {"b0": {"annotation": {"boundary": true, "coord": [0, 1],
//	                                          "input": true, "output": false}}},
//	  "node_vertices": {"v0": {"annotation": {"coord": [1, 1]},
//	                           "data": {"type": "X", "value": "\\pi/2"}}},
//	  "undir_edges":   {"e0": {"src": "b0", "tgt": "v0"}},
//	  "scalar":        "..."
//	}
//
// Object key order inside wire_vertices is load-bearing: it fixes the
// ordering of the diagram's input and output boundary sequences. The
// package therefore parses and emits JSON objects order-preservingly.
//
// Both directions are pure: each call works on its own maps and shares no
// state, so concurrent calls on distinct diagrams need no coordination.
package qgraph
