package layout

import (
	"testing"

	"github.com/aslanistan/schemtex/pkg/errors"
)

func TestSolveChain(t *testing.T) {
	g := New("x")
	g.Add("1", "2", 1)
	g.Add("2", "3", 1)

	pos, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	want := map[string]float64{"1": 0, "2": 1, "3": 2}
	for n, w := range want {
		if pos[n] != w {
			t.Errorf("pos[%s] = %g, want %g", n, pos[n], w)
		}
	}
}

func TestSolveLinkedNodesShareCoordinate(t *testing.T) {
	g := New("y")
	g.Add("1", "2", 1)
	g.Link("2", "3")
	g.Add("3", "4", 1)

	pos, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	if pos["2"] != pos["3"] {
		t.Errorf("linked nodes differ: pos[2]=%g pos[3]=%g", pos["2"], pos["3"])
	}
	if got := pos["4"] - pos["2"]; got != 1 {
		t.Errorf("pos[4]-pos[2] = %g, want 1", got)
	}
}

func TestSolveNegativeSeparation(t *testing.T) {
	// Add(a, b, -2) means b sits 2 units before a.
	g := New("x")
	g.Add("a", "b", -2)

	pos, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if pos["b"] != 0 || pos["a"] != 2 {
		t.Errorf("pos = %v, want b=0 a=2", pos)
	}
}

func TestSolveTakesLongestPath(t *testing.T) {
	// Two routes from 1 to 3: direct (sep 1) and via 2 (sep 2 total).
	// The longer route wins so no constraint is violated.
	g := New("x")
	g.Add("1", "2", 1)
	g.Add("2", "3", 1)
	g.Add("1", "3", 1)

	pos, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if pos["3"] != 2 {
		t.Errorf("pos[3] = %g, want 2", pos["3"])
	}
}

func TestSolveNormalizesToZero(t *testing.T) {
	g := New("y")
	g.Add("top", "bottom", -3)

	pos, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if pos["bottom"] != 0 {
		t.Errorf("minimum coordinate = %g, want 0", pos["bottom"])
	}
}

func TestSolveContradiction(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
	}{
		{
			name: "linked but separated",
			build: func() *Graph {
				g := New("x")
				g.Link("1", "2")
				g.Add("1", "2", 1)
				return g
			},
		},
		{
			name: "separation cycle",
			build: func() *Graph {
				g := New("x")
				g.Add("1", "2", 1)
				g.Add("2", "3", 1)
				g.Add("3", "1", 1)
				return g
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Solve()
			if !errors.Is(err, errors.ErrCodeInvalidLayout) {
				t.Errorf("Solve() error = %v, want INVALID_LAYOUT", err)
			}
		})
	}
}

func TestZeroSeparationActsAsLink(t *testing.T) {
	g := New("x")
	g.Add("1", "2", 0)

	pos, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if pos["1"] != pos["2"] {
		t.Errorf("zero separation: pos[1]=%g pos[2]=%g, want equal", pos["1"], pos["2"])
	}
}
