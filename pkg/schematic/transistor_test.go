package schematic

import (
	"strings"
	"testing"
)

func TestTransistorCoords(t *testing.T) {
	tests := []struct {
		name      string
		classname string
		cptName   string
		opts      string
		wantTop   Pos // local coordinate of the first (collector/drain) terminal
		wantMid   Pos // local coordinate of the base/gate terminal
	}{
		{"npn", "Q", "Q1", "right", Pos{1, 1.5}, Pos{0, 0.75}},
		{"pnp flips", "Qpnp", "Q1", "right", Pos{1, 0}, Pos{0, 0.75}},
		{"njfet", "Jnjf", "J1", "right", Pos{1, 1.5}, Pos{0, 0.48}},
		{"pjfet flips", "Jpjf", "J1", "right", Pos{1, 0}, Pos{0, 1.02}},
		{"nmos", "Mnmos", "M1", "right", Pos{0.85, 1.52}, Pos{-0.25, 0.76}},
		{"pmos flips", "Mpmos", "M1", "right", Pos{0.85, 0}, Pos{-0.25, 0.76}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sch := New(nil)
			c := add(t, sch, tt.classname, tt.cptName, tt.opts, []string{"2", "1", "0"})
			coords := c.Coords()
			if len(coords) != 3 {
				t.Fatalf("Coords() = %v", coords)
			}
			if coords[0] != tt.wantTop || coords[1] != tt.wantMid {
				t.Errorf("Coords() = %v, want first %v, middle %v", coords, tt.wantTop, tt.wantMid)
			}
		})
	}
}

func TestTransistorMirrorCancelsInversion(t *testing.T) {
	sch := New(nil)
	pnp := add(t, sch, "Qpnp", "Q1", "right, mirror", []string{"2", "1", "0"})
	npn := add(t, sch, "Q", "Q2", "right", []string{"5", "4", "3"})

	// A mirrored PNP uses the same terminal layout as a plain NPN.
	for i := range 3 {
		if pnp.Coords()[i] != npn.Coords()[i] {
			t.Fatalf("coords[%d]: mirrored pnp %v, npn %v", i, pnp.Coords()[i], npn.Coords()[i])
		}
	}
}

func TestTransistorDraw(t *testing.T) {
	sch := New(nil)
	c := add(t, sch, "Q", "Q1", "right", []string{"2", "1", "0"})
	if err := sch.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	out, err := c.Draw(DefaultDrawConfig())
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	wants := []string{
		// Symbol centred between collector and emitter, doubled in size.
		"  \\draw (2.00,1.50) node[npn, , scale=2, rotate=0] (Q1) {};\n",
		"  \\draw (2.00,1.50) node[] {Q_{1}};\n",
		"  \\draw (Q1.C) -- (2) (Q1.B) -- (1) (Q1.E) -- (0);\n",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("Draw missing %q\ngot:\n%s", w, out)
		}
	}
}

func TestTransistorAnchors(t *testing.T) {
	sch := New(nil)
	c := add(t, sch, "Mnmos", "M1", "right", []string{"2", "1", "0"})
	if err := sch.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	out, err := c.Draw(DefaultDrawConfig())
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !strings.Contains(out, "(M1.D) -- (2) (M1.G) -- (1) (M1.S) -- (0)") {
		t.Errorf("MOSFET should wire drain/gate/source anchors:\n%s", out)
	}
}
