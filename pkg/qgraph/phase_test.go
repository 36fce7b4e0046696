package qgraph

import (
	"testing"

	"github.com/zxkit/zxgraph/pkg/errors"
	"github.com/zxkit/zxgraph/pkg/zx"
)

func TestParsePhase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    zx.Phase
		wantErr bool
	}{
		{name: "Empty", input: "", want: zx.Phase{}},
		{name: "BarePi", input: `\pi`, want: zx.NewPhase(1, 1)},
		{name: "MinusPi", input: `-\pi`, want: zx.NewPhase(-1, 1)},
		{name: "HalfPi", input: `\pi/2`, want: zx.NewPhase(1, 2)},
		{name: "MinusHalfPi", input: `-\pi/2`, want: zx.NewPhase(-1, 2)},
		{name: "MinusQuarterPi", input: `-\pi/4`, want: zx.NewPhase(-1, 4)},
		{name: "ThreePi", input: `3\pi`, want: zx.NewPhase(3, 1)},
		{name: "ThreeHalvesPi", input: `3\pi/2`, want: zx.NewPhase(3, 2)},
		{name: "NegativeFraction", input: `-3\pi/4`, want: zx.NewPhase(-3, 4)},
		{name: "BareRational", input: "1/2", want: zx.NewPhase(1, 2)},
		{name: "BareInteger", input: "2", want: zx.NewPhase(2, 1)},
		{name: "SpacedCoefficient", input: ` 1\pi `, want: zx.NewPhase(1, 1)},
		{name: "BadCoefficient", input: `x\pi`, wantErr: true},
		{name: "BadDenominator", input: `\pi/x`, wantErr: true},
		{name: "BareGarbage", input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhase(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePhase(%q): expected error", tt.input)
				}
				if !errors.Is(err, errors.ErrCodeInvalidPhase) {
					t.Errorf("error code = %v, want INVALID_PHASE", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePhase(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePhase(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPhase(t *testing.T) {
	tests := []struct {
		name  string
		phase zx.Phase
		want  string
	}{
		{name: "Zero", phase: zx.Phase{}, want: ""},
		{name: "One", phase: zx.NewPhase(1, 1), want: `\pi`},
		{name: "MinusOne", phase: zx.NewPhase(-1, 1), want: `-\pi`},
		{name: "Half", phase: zx.NewPhase(1, 2), want: `\pi/2`},
		{name: "MinusHalf", phase: zx.NewPhase(-1, 2), want: `-\pi/2`},
		{name: "Three", phase: zx.NewPhase(3, 1), want: `3\pi`},
		{name: "MinusThreeQuarters", phase: zx.NewPhase(-3, 4), want: `-3\pi/4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPhase(tt.phase); got != tt.want {
				t.Errorf("FormatPhase(%v) = %q, want %q", tt.phase, got, tt.want)
			}
		})
	}
}

// Every expressible phase must survive a format/parse round trip exactly.
func TestPhaseCodecInverse(t *testing.T) {
	phases := []zx.Phase{
		{},
		zx.NewPhase(1, 1),
		zx.NewPhase(-1, 1),
		zx.NewPhase(1, 2),
		zx.NewPhase(-1, 2),
		zx.NewPhase(3, 2),
		zx.NewPhase(7, 4),
		zx.NewPhase(-5, 8),
		zx.NewPhase(2, 1),
		zx.NewPhase(-17, 16),
	}
	for _, p := range phases {
		got, err := ParsePhase(FormatPhase(p))
		if err != nil {
			t.Errorf("round trip %v: %v", p, err)
			continue
		}
		if got != p {
			t.Errorf("round trip %v = %v", p, got)
		}
	}
}
