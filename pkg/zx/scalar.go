package zx

import (
	"encoding/json"
	"fmt"
	"math/cmplx"
)

// Scalar is the global multiplicative correction factor attached to a
// diagram. It is accumulated symbolically: the represented value is
//
//	floatfactor * 2^(power2/2) * e^(i*pi*phase) * prod (1 + e^(i*pi*p))
//
// with the product ranging over the phase nodes. The zero value is the
// scalar 1.
type Scalar struct {
	// Power2 counts half-powers of sqrt(2).
	Power2 int
	// Phase is the global phase, in units of pi.
	Phase Phase
	// PhaseNodes holds phases of fused degree-0 spiders.
	PhaseNodes []Phase
	// FloatFactor is an extra numeric factor. Zero means unset and is
	// treated as 1.
	FloatFactor complex128
	// IsUnknown marks a scalar whose value was lost during rewriting.
	IsUnknown bool
	// IsZero marks the scalar 0 (the whole diagram is zero).
	IsZero bool

	// extra holds serialized fields this implementation does not
	// interpret, carried through so foreign documents survive a round
	// trip intact.
	extra map[string]json.RawMessage
}

// AddPower2 multiplies the scalar by sqrt(2)^n.
func (s *Scalar) AddPower2(n int) { s.Power2 += n }

// AddPhase adds p to the global phase, wrapping into [0, 2).
func (s *Scalar) AddPhase(p Phase) {
	num := s.Phase.num*p.Den() + p.Num()*s.Phase.Den()
	den := s.Phase.Den() * p.Den()
	// wrap modulo 2*pi
	num %= 2 * den
	if num < 0 {
		num += 2 * den
	}
	s.Phase = normalize(num, den)
}

// IsOne reports whether the scalar is exactly the identity factor. A
// scalar carrying uninterpreted foreign fields is never the identity.
func (s Scalar) IsOne() bool {
	return !s.IsZero && !s.IsUnknown && s.Power2 == 0 && s.Phase.IsZero() &&
		len(s.PhaseNodes) == 0 && len(s.extra) == 0 &&
		(s.FloatFactor == 0 || factorIsOne(s.FloatFactor))
}

func factorIsOne(f complex128) bool { return cmplx.Abs(f-1) < 1e-5 }

// Interpreted field names of the external scalar object. Anything else
// is captured verbatim in extra.
const (
	scalarPower2      = "power2"
	scalarPhase       = "phase"
	scalarFloatFactor = "floatfactor"
	scalarPhaseNodes  = "phasenodes"
	scalarIsZero      = "is_zero"
	scalarIsUnknown   = "is_unknown"
)

// MarshalJSON serializes the scalar in its external object form.
// Uninterpreted fields captured during unmarshaling are merged back in.
func (s Scalar) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		scalarPower2: s.Power2,
		scalarPhase:  s.Phase.String(),
	}
	if s.FloatFactor != 0 && !factorIsOne(s.FloatFactor) {
		if imag(s.FloatFactor) == 0 {
			out[scalarFloatFactor] = real(s.FloatFactor)
		} else {
			out[scalarFloatFactor] = [2]float64{real(s.FloatFactor), imag(s.FloatFactor)}
		}
	}
	if len(s.PhaseNodes) > 0 {
		nodes := make([]string, len(s.PhaseNodes))
		for i, p := range s.PhaseNodes {
			nodes[i] = p.String()
		}
		out[scalarPhaseNodes] = nodes
	}
	if s.IsZero {
		out[scalarIsZero] = true
	}
	if s.IsUnknown {
		out[scalarIsUnknown] = true
	}
	for k, v := range s.extra {
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the external object form of a scalar. Fields it
// does not interpret are retained and re-emitted by MarshalJSON.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var out Scalar
	if raw, ok := fields[scalarPower2]; ok {
		if err := json.Unmarshal(raw, &out.Power2); err != nil {
			return fmt.Errorf("scalar power2: %w", err)
		}
		delete(fields, scalarPower2)
	}
	if raw, ok := fields[scalarPhase]; ok {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return fmt.Errorf("scalar phase: %w", err)
		}
		p, err := ParseRatio(str)
		if err != nil {
			return fmt.Errorf("scalar phase: %w", err)
		}
		out.Phase = p
		delete(fields, scalarPhase)
	}
	if raw, ok := fields[scalarFloatFactor]; ok {
		f, err := parseFactor(raw)
		if err != nil {
			return fmt.Errorf("scalar floatfactor: %w", err)
		}
		out.FloatFactor = f
		delete(fields, scalarFloatFactor)
	}
	if raw, ok := fields[scalarPhaseNodes]; ok {
		var strs []string
		if err := json.Unmarshal(raw, &strs); err != nil {
			return fmt.Errorf("scalar phasenodes: %w", err)
		}
		out.PhaseNodes = make([]Phase, 0, len(strs))
		for _, str := range strs {
			p, err := ParseRatio(str)
			if err != nil {
				return fmt.Errorf("scalar phase node: %w", err)
			}
			out.PhaseNodes = append(out.PhaseNodes, p)
		}
		delete(fields, scalarPhaseNodes)
	}
	if raw, ok := fields[scalarIsZero]; ok {
		if err := json.Unmarshal(raw, &out.IsZero); err != nil {
			return fmt.Errorf("scalar is_zero: %w", err)
		}
		delete(fields, scalarIsZero)
	}
	if raw, ok := fields[scalarIsUnknown]; ok {
		if err := json.Unmarshal(raw, &out.IsUnknown); err != nil {
			return fmt.Errorf("scalar is_unknown: %w", err)
		}
		delete(fields, scalarIsUnknown)
	}
	if len(fields) > 0 {
		out.extra = fields
	}
	*s = out
	return nil
}

// parseFactor reads a numeric factor that is either a plain real number
// or a two-element [re, im] array.
func parseFactor(raw json.RawMessage) (complex128, error) {
	var re float64
	if err := json.Unmarshal(raw, &re); err == nil {
		return complex(re, 0), nil
	}
	var pair [2]float64
	if err := json.Unmarshal(raw, &pair); err != nil {
		return 0, err
	}
	return complex(pair[0], pair[1]), nil
}

// ParseScalar decodes a scalar from its raw external representation.
// The original tooling embeds the scalar as a JSON-encoded string; newer
// documents may inline the object directly. Both forms are accepted.
func ParseScalar(raw json.RawMessage) (Scalar, error) {
	var s Scalar
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return Scalar{}, err
		}
		raw = json.RawMessage(inner)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

// ExternalJSON serializes the scalar in the string-embedded form the
// original tooling emits, suitable for the document's top-level scalar
// field.
func (s Scalar) ExternalJSON() (json.RawMessage, error) {
	obj, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(obj))
}
