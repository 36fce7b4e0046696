package zx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRatio is returned by [ParseRatio] when the input is not a
// valid rational number.
var ErrInvalidRatio = errors.New("invalid rational number")

// Phase is an exact rational multiple of pi attached to a vertex.
// The zero value is phase 0. Phases are always stored normalized
// (gcd-reduced, positive denominator, canonical zero), so values are
// directly comparable with ==.
type Phase struct {
	num, den int64
}

// NewPhase returns the normalized phase num/den (in units of pi).
// It panics if den is zero; denominators come from literal fractions in
// code or from [ParseRatio], which rejects zero itself.
func NewPhase(num, den int64) Phase {
	if den == 0 {
		panic("zx: phase with zero denominator")
	}
	return normalize(num, den)
}

func normalize(num, den int64) Phase {
	if num == 0 {
		return Phase{}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Phase{num: num / g, den: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Num returns the normalized numerator.
func (p Phase) Num() int64 { return p.num }

// Den returns the normalized denominator. It is always positive.
func (p Phase) Den() int64 {
	if p.den == 0 {
		return 1
	}
	return p.den
}

// IsZero reports whether the phase is 0.
func (p Phase) IsZero() bool { return p.num == 0 }

// String formats the phase as a plain rational, e.g. "0", "-1", "3/2".
// This is the representation used inside scalar JSON; the \pi-marker
// encoding lives in the qgraph package.
func (p Phase) String() string {
	if p.num == 0 {
		return "0"
	}
	if p.Den() == 1 {
		return strconv.FormatInt(p.num, 10)
	}
	return fmt.Sprintf("%d/%d", p.num, p.Den())
}

// ParseRatio parses a plain rational like "2", "-1" or "3/4".
// Whitespace around the number is ignored.
func ParseRatio(s string) (Phase, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phase{}, fmt.Errorf("%w: empty string", ErrInvalidRatio)
	}
	numStr, denStr, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Phase{}, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
	}
	den := int64(1)
	if hasDen {
		den, err = strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
		if err != nil || den == 0 {
			return Phase{}, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
		}
	}
	return normalize(num, den), nil
}
