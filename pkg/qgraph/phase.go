package qgraph

import (
	"strconv"
	"strings"

	"github.com/zxkit/zxgraph/pkg/errors"
	"github.com/zxkit/zxgraph/pkg/zx"
)

// piMarker is the literal pi token used in external phase strings.
const piMarker = `\pi`

// ParsePhase decodes an external phase string into an exact rational
// multiple of pi.
//
// The grammar: an empty string is phase 0. A string containing the \pi
// marker is a coefficient — a bare "-" means -1, an empty coefficient
// means 1, a leading "/" means a coefficient of 1 over the denominator
// (so "\pi/2" is 1/2). A string without the marker is a plain rational.
//
// Returns an INVALID_PHASE error when the coefficient is not a valid
// rational.
func ParsePhase(s string) (zx.Phase, error) {
	if s == "" {
		return zx.Phase{}, nil
	}
	if !strings.Contains(s, piMarker) {
		p, err := zx.ParseRatio(s)
		if err != nil {
			return zx.Phase{}, errors.New(errors.ErrCodeInvalidPhase, "invalid phase %q", s)
		}
		return p, nil
	}

	r := strings.TrimSpace(strings.ReplaceAll(s, piMarker, ""))
	switch {
	case r == "":
		return zx.NewPhase(1, 1), nil
	case r == "-":
		r = "-1"
	case strings.HasPrefix(r, "-/"):
		// bare negative coefficient, as in "-\pi/2"
		r = "-1" + r[1:]
	case strings.HasPrefix(r, "/"):
		r = "1" + r
	}
	p, err := zx.ParseRatio(r)
	if err != nil {
		return zx.Phase{}, errors.New(errors.ErrCodeInvalidPhase, "invalid phase %q", s)
	}
	return p, nil
}

// FormatPhase encodes a phase into its external string form: "" for 0,
// "\pi/2" for 1/2, "-\pi" for -1, "3\pi" for 3. ParsePhase(FormatPhase(p))
// always yields p again, though several strings decode to the same phase.
func FormatPhase(p zx.Phase) string {
	if p.IsZero() {
		return ""
	}
	var coeff string
	switch p.Num() {
	case -1:
		coeff = "-"
	case 1:
		coeff = ""
	default:
		coeff = strconv.FormatInt(p.Num(), 10)
	}
	var suffix string
	if p.Den() != 1 {
		suffix = "/" + strconv.FormatInt(p.Den(), 10)
	}
	return coeff + piMarker + suffix
}
