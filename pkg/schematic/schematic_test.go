package schematic

import (
	"strings"
	"testing"

	"github.com/aslanistan/schemtex/pkg/errors"
)

func TestAddDuplicateName(t *testing.T) {
	sch := New(nil)
	add(t, sch, "R", "R1", "right", []string{"1", "2"})

	_, err := sch.Add("R", "R", "1", "R1 2 3", "right", []string{"2", "3"})
	if errors.GetCode(err) != errors.ErrCodeDuplicateName {
		t.Fatalf("duplicate add: error = %v, want DUPLICATE_NAME", err)
	}
}

func TestAddAnonymousIDs(t *testing.T) {
	sch := New(nil)

	w1, err := sch.Add("W", "W", "", "W 1 2", "right", []string{"1", "2"})
	if err != nil {
		t.Fatal(err)
	}
	w2, err := sch.Add("W", "W", "", "W 2 3", "right", []string{"2", "3"})
	if err != nil {
		t.Fatal(err)
	}
	r1, err := sch.Add("R", "R", "", "R 3 4", "right", []string{"3", "4"})
	if err != nil {
		t.Fatal(err)
	}

	// Counters run per type, and generated ids never produce labels.
	if w1.Name() != "W@1" || w2.Name() != "W@2" || r1.Name() != "R@1" {
		t.Errorf("names = %q, %q, %q", w1.Name(), w2.Name(), r1.Name())
	}
	out, err := r1.Draw(DefaultDrawConfig())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "l_") || strings.Contains(out, "l^") {
		t.Errorf("anonymous component should be unlabeled: %q", out)
	}
}

func TestComponentLookup(t *testing.T) {
	sch := New(nil)
	add(t, sch, "R", "R1", "right", []string{"1", "2"})

	if _, err := sch.Component("R1"); err != nil {
		t.Errorf("Component(R1): %v", err)
	}
	if _, err := sch.Component("R9"); errors.GetCode(err) != errors.ErrCodeUnknownReference {
		t.Errorf("Component(R9): error = %v, want UNKNOWN_REFERENCE", err)
	}
}

func TestNodePosBeforeSolve(t *testing.T) {
	sch := New(nil)
	add(t, sch, "R", "R1", "right", []string{"1", "2"})

	if _, err := sch.NodePos("1"); errors.GetCode(err) != errors.ErrCodeInternal {
		t.Fatalf("NodePos before solve: error = %v, want INTERNAL_ERROR", err)
	}
}

// A voltage divider: source on the left, two resistors, and a wire closing
// the bottom rail between the split ground nodes.
func dividerSchematic(t *testing.T) *Schematic {
	t.Helper()
	sch := New(nil)
	add(t, sch, "V", "Vs", "down", []string{"1", "0"}, "10")
	add(t, sch, "R", "R1", "right", []string{"1", "2"}, "6")
	add(t, sch, "R", "R2", "down", []string{"2", "0_2"}, "4")
	add(t, sch, "W", "W", "right", []string{"0", "0_2"})
	return sch
}

func TestSolveDivider(t *testing.T) {
	sch := dividerSchematic(t)
	if err := sch.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := map[string]Pos{
		"1":   {0, 2},
		"2":   {2, 2},
		"0":   {0, 0},
		"0_2": {2, 0},
	}
	for name, pos := range want {
		got, err := sch.NodePos(name)
		if err != nil {
			t.Fatalf("NodePos(%s): %v", name, err)
		}
		if got != pos {
			t.Errorf("NodePos(%s) = %v, want %v", name, got, pos)
		}
	}
}

func TestSolveRespectsSpacingAndSize(t *testing.T) {
	sch := New(nil)
	sch.NodeSpacing = 3.0
	add(t, sch, "R", "R1", "right, size=2", []string{"1", "2"})
	if err := sch.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	got, _ := sch.NodePos("2")
	if got != (Pos{6, 0}) {
		t.Errorf("NodePos(2) = %v, want {6 0}", got)
	}
}

func TestSolveConflict(t *testing.T) {
	// A horizontal and a vertical element between the same node pair: the
	// wire links the x coordinates the resistor must keep apart.
	sch := New(nil)
	add(t, sch, "R", "R1", "right", []string{"1", "2"})
	add(t, sch, "W", "W", "down", []string{"1", "2"})

	err := sch.Solve()
	if errors.GetCode(err) != errors.ErrCodeInvalidLayout {
		t.Fatalf("Solve: error = %v, want INVALID_LAYOUT", err)
	}
}

func TestDrawDivider(t *testing.T) {
	sch := dividerSchematic(t)
	out, err := sch.Draw(DefaultDrawConfig())
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	wantLines := []string{
		"\\begin{tikzpicture}\n",
		"  \\coordinate (1) at (0.00,2.00);\n",
		"  \\coordinate (2) at (2.00,2.00);\n",
		"  \\coordinate (0) at (0.00,0.00);\n",
		"  \\coordinate (0_2) at (2.00,0.00);\n",
		"  \\draw (0) to [align=right,V,l_={V_{s}=10},,,,*-*,n=Vs] (1);\n",
		"  \\draw (1) to [align=right,R,l_={R_{1}=6},,,,*-*,n=R1] (2);\n",
		"  \\draw (2) to [align=right,R,l^={R_{2}=4},,,,*-*,n=R2] (0_2);\n",
		"\\end{tikzpicture}\n",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("Draw output missing %q\ngot:\n%s", line, out)
		}
	}
}

func TestDrawAbortsOnError(t *testing.T) {
	sch := New(nil)
	add(t, sch, "R", "R1", "right", []string{"1", "2"})
	add(t, sch, "K", "K1", "right", nil, "L1", "L2", "0.5")

	// K1 references inductors that do not exist; the drawing must fail
	// rather than emit partial output.
	_, err := sch.Draw(DefaultDrawConfig())
	if errors.GetCode(err) != errors.ErrCodeUnknownReference {
		t.Fatalf("Draw: error = %v, want UNKNOWN_REFERENCE", err)
	}
}

func TestMutualCouplingDNodes(t *testing.T) {
	sch := New(nil)
	add(t, sch, "L", "L1", "down", []string{"1", "0"})
	add(t, sch, "L", "L2", "down", []string{"2", "0_2"})
	k := add(t, sch, "K", "K1", "right", nil, "L1", "L2", "0.5")

	dnodes, err := k.DNodes()
	if err != nil {
		t.Fatalf("DNodes: %v", err)
	}
	want := []string{"1", "0", "2", "0_2"}
	if len(dnodes) != len(want) {
		t.Fatalf("DNodes = %v, want %v", dnodes, want)
	}
	for i := range want {
		if dnodes[i] != want[i] {
			t.Errorf("DNodes[%d] = %q, want %q", i, dnodes[i], want[i])
		}
	}
}

func TestHiddenNodes(t *testing.T) {
	sch := New(nil)
	add(t, sch, "R", "R1", "right", []string{"1", "_2"})

	node, err := sch.node("_2")
	if err != nil {
		t.Fatal(err)
	}
	if node.Visible(true) {
		t.Error("underscore-prefixed node should be hidden")
	}

	c, _ := sch.Component("R1")
	out, err := c.Draw(DefaultDrawConfig())
	if err != nil {
		t.Fatal(err)
	}
	// Hidden terminal: the marker string covers only the visible end.
	if !strings.Contains(out, ",*-,") {
		t.Errorf("hidden terminal should have no marker: %q", out)
	}
}
