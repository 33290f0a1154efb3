package schematic

import (
	"math"
	"testing"
)

func TestPosString(t *testing.T) {
	p := Pos{1.5, -0.333}
	if got := p.String(); got != "1.50,-0.33" {
		t.Errorf("String() = %q", got)
	}
}

func TestPosArithmetic(t *testing.T) {
	p := Pos{1, 2}.Add(Pos{3, -1}).Scale(2)
	if p != (Pos{8, 2}) {
		t.Errorf("got %v, want {8 2}", p)
	}
}

func TestRotationMatrixExact(t *testing.T) {
	tests := []struct {
		angle float64
		in    Pos
		want  Pos
	}{
		{0, Pos{1, 0}, Pos{1, 0}},
		{90, Pos{1, 0}, Pos{0, 1}},
		{180, Pos{1, 0}, Pos{-1, 0}},
		{-180, Pos{1, 0}, Pos{-1, 0}},
		{-90, Pos{1, 0}, Pos{0, -1}},
		{90, Pos{0, 1}, Pos{-1, 0}},
		{-90, Pos{0, 1}, Pos{1, 0}},
	}

	for _, tt := range tests {
		got := rotationMatrix(tt.angle).Apply(tt.in)
		// Axis-aligned angles must be exact, not just close.
		if got != tt.want {
			t.Errorf("rotate(%v) of %v = %v, want %v", tt.angle, tt.in, got, tt.want)
		}
	}
}

func TestRotationMatrixTrig(t *testing.T) {
	got := rotationMatrix(45).Apply(Pos{1, 0})
	want := Pos{math.Sqrt2 / 2, math.Sqrt2 / 2}
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("rotate(45) of (1,0) = %v, want %v", got, want)
	}
}
