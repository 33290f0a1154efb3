package schematic

import (
	"strings"
	"testing"

	"github.com/aslanistan/schemtex/pkg/errors"
)

// add builds a component from its element name and inserts it, failing the
// test on error.
func add(t *testing.T, sch *Schematic, classname, name, opts string, nodes []string, args ...string) Component {
	t.Helper()
	tag, id, err := sch.Registry().SplitName(name)
	if err != nil {
		t.Fatalf("SplitName(%q): %v", name, err)
	}
	net := name + " " + strings.Join(nodes, " ")
	c, err := sch.Add(classname, tag, id, net, opts, nodes, args...)
	if err != nil {
		t.Fatalf("Add(%q): %v", name, err)
	}
	return c
}

func TestResolveOnePortOpts(t *testing.T) {
	tests := []struct {
		name       string
		opts       string
		source     bool
		horizontal bool
		vertical   bool
		want       Options
		wantLabel  string
	}{
		{
			name:       "passive horizontal",
			opts:       "right, v=5, i=2, l=R_x",
			horizontal: true,
			want:       Options{"dir": "right", "v^": "5", "i_": "2", "l_": "R_x"},
			wantLabel:  "_",
		},
		{
			name:      "passive vertical flips sides",
			opts:      "down, v=5, i=2, l=R_x",
			vertical:  true,
			want:      Options{"dir": "down", "v_": "5", "i^": "2", "l^": "R_x"},
			wantLabel: "^",
		},
		{
			name:       "source horizontal flips sides",
			opts:       "right, v=5, l=V_x",
			source:     true,
			horizontal: true,
			want:       Options{"dir": "right", "v_": "5", "l^": "V_x"},
			wantLabel:  "^",
		},
		{
			name:      "source vertical keeps defaults",
			opts:      "down, v=5, l=V_x",
			source:    true,
			vertical:  true,
			want:      Options{"dir": "down", "v^": "5", "l_": "V_x"},
			wantLabel: "_",
		},
		{
			name:       "directed marks",
			opts:       "right, vr=5, ir=2",
			horizontal: true,
			want:       Options{"dir": "right", "v^>": "5", "i_<": "2"},
			wantLabel:  "_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ParseOptions(tt.opts)
			got, labelPos := resolveOnePortOpts(in, tt.source, tt.horizontal, tt.vertical)
			if labelPos != tt.wantLabel {
				t.Errorf("labelPos = %q, want %q", labelPos, tt.wantLabel)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("resolved = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("resolved[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestResolveOnePortOptsPure(t *testing.T) {
	in := ParseOptions("right, v=5, l=R_x")
	resolveOnePortOpts(in, false, true, false)
	if in["v"] != "5" || in["l"] != "R_x" {
		t.Errorf("input options were mutated: %v", in)
	}
}

func TestOnePortDraw(t *testing.T) {
	tests := []struct {
		name      string
		classname string
		cptName   string
		opts      string
		nodes     []string
		args      []string
		cfg       DrawConfig
		want      string
	}{
		{
			name:      "resistor with id and value",
			classname: "R",
			cptName:   "R1",
			opts:      "right",
			nodes:     []string{"1", "2"},
			args:      []string{"5"},
			cfg:       DefaultDrawConfig(),
			want:      "  \\draw (1) to [align=right,R,l_={R_{1}=5},,,,*-*,n=R1] (2);\n",
		},
		{
			name:      "source draws terminals swapped",
			classname: "V",
			cptName:   "V1",
			opts:      "down",
			nodes:     []string{"1", "2"},
			cfg:       DefaultDrawConfig(),
			want:      "  \\draw (2) to [align=right,V,l_=V_{1},,,,*-*,n=V1] (1);\n",
		},
		{
			name:      "vertical passive labels above",
			classname: "R",
			cptName:   "R1",
			opts:      "down",
			nodes:     []string{"1", "2"},
			cfg:       DefaultDrawConfig(),
			want:      "  \\draw (1) to [align=right,R,l^=R_{1},,,,*-*,n=R1] (2);\n",
		},
		{
			name:      "variable resistor symbol",
			classname: "R",
			cptName:   "R1",
			opts:      "right, variable",
			nodes:     []string{"1", "2"},
			cfg:       DefaultDrawConfig(),
			want:      "  \\draw (1) to [align=right,vR,l_=R_{1},variable,,,*-*,n=R1] (2);\n",
		},
		{
			name:      "explicit label wins",
			classname: "R",
			cptName:   "R1",
			opts:      "right, l=R_x",
			nodes:     []string{"1", "2"},
			args:      []string{"5"},
			cfg:       DefaultDrawConfig(),
			want:      "  \\draw (1) to [align=right,R,l_=$R_x$,,,,*-*,n=R1] (2);\n",
		},
		{
			name:      "value only",
			classname: "R",
			cptName:   "R1",
			opts:      "right",
			nodes:     []string{"1", "2"},
			args:      []string{"5"},
			cfg:       DrawConfig{DrawNodes: true, LabelValues: true},
			want:      "  \\draw (1) to [align=right,R,l_=5,,,,*-*,n=R1] (2);\n",
		},
		{
			name:      "nodes suppressed",
			classname: "R",
			cptName:   "R1",
			opts:      "right",
			nodes:     []string{"1", "2"},
			cfg:       DrawConfig{LabelIDs: true, LabelValues: true},
			want:      "  \\draw (1) to [align=right,R,l_=R_{1},,,,,n=R1] (2);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sch := New(nil)
			c := add(t, sch, tt.classname, tt.cptName, tt.opts, tt.nodes, tt.args...)
			got, err := c.Draw(tt.cfg)
			if err != nil {
				t.Fatalf("Draw: %v", err)
			}
			if got != tt.want {
				t.Errorf("Draw =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestOnePortDrawPortNodes(t *testing.T) {
	sch := New(nil)
	add(t, sch, "P", "P1", "right", []string{"1", "2"})

	c := add(t, sch, "R", "R1", "right", []string{"2", "3"})
	got, err := c.Draw(DefaultDrawConfig())
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !strings.Contains(got, "o-*") {
		t.Errorf("port terminal should draw as open circle: %q", got)
	}
}

func TestOnePortAngleErrors(t *testing.T) {
	sch := New(nil)

	c := add(t, sch, "R", "R1", "", []string{"1", "2"})
	_, err := c.TCoords()
	if errors.GetCode(err) != errors.ErrCodeInvalidOrientation {
		t.Errorf("missing orientation: error = %v, want INVALID_ORIENTATION", err)
	}

	c2 := add(t, sch, "R", "R2", "rotate=45", []string{"1", "2"})
	if _, err := c2.TCoords(); errors.GetCode(err) != errors.ErrCodeInvalidOrientation {
		t.Errorf("rotate without direction: error = %v, want INVALID_ORIENTATION", err)
	}
}

func TestVCSDrawsTwoNodes(t *testing.T) {
	sch := New(nil)
	c := add(t, sch, "E", "E1", "right", []string{"1", "2", "3", "4"})

	if got := c.VNodes(); len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("VNodes() = %v, want [1 2]", got)
	}
	// The controlling nodes never register on the schematic.
	names := sch.NodeNames()
	if len(names) != 2 {
		t.Errorf("NodeNames() = %v, want the two output terminals", names)
	}
}

func TestWireImplicit(t *testing.T) {
	sch := New(nil)
	c := add(t, sch, "W", "W", "down, implicit", []string{"1", "0"})

	if got := c.VNodes(); len(got) != 1 || got[0] != "1" {
		t.Fatalf("VNodes() = %v, want [1]", got)
	}
	if err := sch.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	got, err := c.Draw(DefaultDrawConfig())
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	want := "  \\draw (1) node[sground,scale=0.5,rotate=0] {};\n"
	if got != want {
		t.Errorf("Draw = %q, want %q", got, want)
	}
}

func TestWireGroundKinds(t *testing.T) {
	tests := []struct {
		opts string
		want string
	}{
		{"down, implicit", "sground"},
		{"down, ground", "ground"},
		{"down, sground", "sground"},
		{"down, implicit, ground", "sground"},
	}

	for _, tt := range tests {
		sch := New(nil)
		c := add(t, sch, "W", "W", tt.opts, []string{"1", "0"})
		if err := sch.Solve(); err != nil {
			t.Fatalf("Solve: %v", err)
		}
		got, err := c.Draw(DefaultDrawConfig())
		if err != nil {
			t.Fatalf("Draw(%q): %v", tt.opts, err)
		}
		if !strings.Contains(got, "node["+tt.want+",") {
			t.Errorf("Draw(%q) = %q, want glyph %q", tt.opts, got, tt.want)
		}
	}
}
