package schematic

import (
	"strings"

	"github.com/aslanistan/schemtex/pkg/errors"
	"github.com/aslanistan/schemtex/pkg/layout"
	"github.com/aslanistan/schemtex/pkg/tex"
)

// DrawConfig holds the draw-pass toggles recognized by every component.
type DrawConfig struct {
	DrawNodes   bool // emit node dot/circle markers
	LabelIDs    bool // include component identifier labels
	LabelValues bool // include value labels
	Link        bool // draw the coupling arc on transformers
}

// DefaultDrawConfig returns the default configuration with everything on.
func DefaultDrawConfig() DrawConfig {
	return DrawConfig{DrawNodes: true, LabelIDs: true, LabelValues: true, Link: true}
}

// Component is one netlist element placed on a schematic.
//
// Coords returns the element's anchor points in its own unrotated, unmirrored
// local frame; TCoords applies the rotation matrix. DNodes are the node names
// actually used for drawing and layout: for almost every family this equals
// VNodes, but mutual coupling borrows its drawn nodes from two other
// components and resolves them by name at call time.
type Component interface {
	Name() string
	Type() string
	ID() string
	Nodes() []string
	VNodes() []string
	DNodes() ([]string, error)
	Coords() []Pos
	TCoords() ([]Pos, error)

	// Layout pass: register placement constraints with the per-axis solver.
	XLink(g *layout.Graph) error
	YLink(g *layout.Graph) error
	XPlace(g *layout.Graph) error
	YPlace(g *layout.Graph) error

	// Draw emits the component's circuitikz commands using resolved node
	// positions. Requires the owning schematic to have been solved.
	Draw(cfg DrawConfig) (string, error)

	Opts() Options
	String() string
}

// Base carries the state and behavior shared by all component families.
// Concrete families embed Base and supply Coords and Draw; the self pointer
// routes shared geometry helpers through the concrete type's overrides.
type Base struct {
	sch  *Schematic
	self Component

	def  Def
	typ  string
	id   string
	name string
	net  string

	opts  Options
	nodes []string
	args  []string

	tcoords []Pos // memoized; safe because geometry is immutable post-construction
}

func (b *Base) init(self Component, sch *Schematic, def Def, typ, id, net string, opts Options, nodes, args []string) {
	b.self = self
	b.sch = sch
	b.def = def
	b.typ = typ
	b.id = id
	b.name = typ + id
	b.net = net
	b.opts = opts
	b.nodes = nodes
	b.args = args
}

func (b *Base) Name() string    { return b.name }
func (b *Base) Type() string    { return b.typ }
func (b *Base) ID() string      { return b.id }
func (b *Base) Nodes() []string { return b.nodes }
func (b *Base) Opts() Options   { return b.opts }

// VNodes returns the visible (drawn) subset of the electrical nodes.
// Most families draw every node.
func (b *Base) VNodes() []string { return b.nodes }

// DNodes returns the nodes used for drawing and layout.
func (b *Base) DNodes() ([]string, error) { return b.self.VNodes(), nil }

func (b *Base) String() string {
	if len(b.opts) == 0 {
		return b.net
	}
	known := b.opts.format(append(append(append(
		append([]string{}, voltageKeys...), currentKeys...), labelKeys...), miscKeys...))
	rest := b.opts.formatRest()
	switch {
	case known == "":
		return b.net + "; " + rest
	case rest == "":
		return b.net + "; " + known
	}
	return b.net + "; " + known + "," + rest
}

// Size is the scale factor for inter-node spacing.
func (b *Base) Size() float64 { return b.opts.Float("size", 1.0) }

// Scale is the uniform geometric scale for self-contained symbols
// (currently only the op-amp family consumes it).
func (b *Base) Scale() float64 { return b.opts.Float("scale", 1.0) }

// Mirror reports whether the element is flipped about its long axis.
func (b *Base) Mirror() bool { return b.opts.Has("mirror") }

func (b *Base) IsDown() bool  { return b.opts["dir"] == "down" }
func (b *Base) IsUp() bool    { return b.opts["dir"] == "up" }
func (b *Base) IsLeft() bool  { return b.opts["dir"] == "left" }
func (b *Base) IsRight() bool { return b.opts["dir"] == "right" }

func (b *Base) IsHorizontal() bool {
	return b.opts["dir"] == "left" || b.opts["dir"] == "right"
}

// IsVertical is {left, down}, not {up, down}; the one-port label-side rules
// depend on exactly this set.
func (b *Base) IsVertical() bool {
	return b.opts["dir"] == "left" || b.opts["dir"] == "down"
}

// Angle returns the rotation angle in degrees: the orientation flag's base
// angle plus any explicit rotate offset. An orientation flag is mandatory.
func (b *Base) Angle() (float64, error) {
	var angle float64
	switch b.opts["dir"] {
	case "right":
		angle = 0
	case "down":
		angle = -90
	case "left":
		angle = 180
	case "up":
		angle = 90
	case "":
		return 0, errors.New(errors.ErrCodeInvalidOrientation,
			"%s: no orientation given (left, right, up or down)", b.name)
	default:
		return 0, errors.New(errors.ErrCodeInvalidOrientation,
			"%s: unknown orientation %q", b.name, b.opts["dir"])
	}
	if b.opts.Has("rotate") {
		angle += b.opts.Float("rotate", 0)
	}
	return angle, nil
}

// Rotation returns the 2x2 rotation matrix for the element's angle.
func (b *Base) Rotation() (Matrix, error) {
	angle, err := b.Angle()
	if err != nil {
		return Matrix{}, err
	}
	return rotationMatrix(angle), nil
}

// TCoords returns the local coordinates transformed by the rotation matrix.
// The result is memoized for the lifetime of the component.
func (b *Base) TCoords() ([]Pos, error) {
	if b.tcoords != nil {
		return b.tcoords, nil
	}
	r, err := b.Rotation()
	if err != nil {
		return nil, err
	}
	coords := b.self.Coords()
	out := make([]Pos, len(coords))
	for i, c := range coords {
		out[i] = r.Apply(c)
	}
	b.tcoords = out
	return out, nil
}

// XLink registers an equality constraint for every pair of drawn nodes whose
// transformed coordinates coincide on the x axis.
func (b *Base) XLink(g *layout.Graph) error {
	return b.link(g, func(p Pos) float64 { return p.X })
}

// YLink registers an equality constraint for every pair of drawn nodes whose
// transformed coordinates coincide on the y axis.
func (b *Base) YLink(g *layout.Graph) error {
	return b.link(g, func(p Pos) float64 { return p.Y })
}

// XPlace registers the required x separation, scaled by size, for every pair
// of drawn nodes.
func (b *Base) XPlace(g *layout.Graph) error {
	return b.place(g, func(p Pos) float64 { return p.X })
}

// YPlace registers the required y separation, scaled by size, for every pair
// of drawn nodes.
func (b *Base) YPlace(g *layout.Graph) error {
	return b.place(g, func(p Pos) float64 { return p.Y })
}

func (b *Base) link(g *layout.Graph, axis func(Pos) float64) error {
	tc, err := b.self.TCoords()
	if err != nil {
		return err
	}
	dnodes, err := b.self.DNodes()
	if err != nil {
		return err
	}
	for m1, n1 := range dnodes {
		for m2 := m1 + 1; m2 < len(dnodes); m2++ {
			if axis(tc[m2]) == axis(tc[m1]) {
				g.Link(n1, dnodes[m2])
			}
		}
	}
	return nil
}

func (b *Base) place(g *layout.Graph, axis func(Pos) float64) error {
	tc, err := b.self.TCoords()
	if err != nil {
		return err
	}
	dnodes, err := b.self.DNodes()
	if err != nil {
		return err
	}
	size := b.Size()
	for m1, n1 := range dnodes {
		for m2 := m1 + 1; m2 < len(dnodes); m2++ {
			g.Add(n1, dnodes[m2], (axis(tc[m2])-axis(tc[m1]))*size)
		}
	}
	return nil
}

// pos resolves a node name to its solved position.
func (b *Base) pos(node string) (Pos, error) {
	return b.sch.NodePos(node)
}

// nodeStr builds the circuitikz terminal decoration for a one-port: "*" for
// a plain visible node, "o" for a port, joined by "-". An empty string means
// neither terminal is drawn.
func (b *Base) nodeStr(n1, n2 *Node, cfg DrawConfig) string {
	s := ""
	if n1.Visible(cfg.DrawNodes) {
		if n1.Port {
			s = "o"
		} else {
			s = "*"
		}
	}
	s += "-"
	if n2.Visible(cfg.DrawNodes) {
		if n2.Port {
			s += "o"
		} else {
			s += "*"
		}
	}
	if s == "-" {
		return ""
	}
	return s
}

// drawNodes emits a marker command for each visible drawn node: a filled dot
// for ordinary nodes, an open circle for ports. Suppressed entirely when
// node drawing is disabled.
func (b *Base) drawNodes(cfg DrawConfig) (string, error) {
	if !cfg.DrawNodes {
		return "", nil
	}
	dnodes, err := b.self.DNodes()
	if err != nil {
		return "", err
	}
	var s strings.Builder
	for _, name := range dnodes {
		node, err := b.sch.node(name)
		if err != nil {
			return "", err
		}
		if !node.Visible(cfg.DrawNodes) {
			continue
		}
		if node.Port {
			s.WriteString("  \\draw (" + node.Name + ") node[ocirc] {};\n")
		} else {
			s.WriteString("  \\draw (" + node.Name + ") node[circ] {};\n")
		}
	}
	return s.String(), nil
}

// idLabel is the identifier label, e.g. "R_{1}". Auto-generated ids are
// never shown.
func (b *Base) idLabel() string {
	if b.id == "" || strings.HasPrefix(b.id, anonPrefix) {
		return ""
	}
	return tex.Subscript(b.typ, b.id)
}

// valueLabel is the formatted first positional argument, if any.
func (b *Base) valueLabel() string {
	if len(b.args) == 0 {
		return ""
	}
	return tex.FormatLabel(b.args[0])
}

// defaultLabel prefers the value over the identifier.
func (b *Base) defaultLabel() string {
	if v := b.valueLabel(); v != "" {
		return v
	}
	return b.idLabel()
}

// label resolves the annotation text drawn next to self-contained symbols
// (transistors, op amps, two-ports, switches, gates). An explicit "l" option
// wins verbatim; otherwise the default label is used, gated by the
// label-values toggle.
func (b *Base) label(cfg DrawConfig) string {
	s := ""
	if cfg.LabelValues {
		s = b.defaultLabel()
	}
	if explicit, ok := b.opts["l"]; ok && explicit != "" {
		s = tex.FormatLabel(explicit)
	}
	return s
}
