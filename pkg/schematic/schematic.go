package schematic

import (
	"fmt"
	"strings"

	"github.com/aslanistan/schemtex/pkg/errors"
	"github.com/aslanistan/schemtex/pkg/layout"
)

// anonPrefix marks auto-generated component ids. User netlists cannot
// produce it because "@" never survives name splitting.
const anonPrefix = "@"

// Node is one electrical node of the schematic.
type Node struct {
	Name string
	Pos  Pos  // valid after Solve
	Port bool // attached to a port element, drawn as an open circle
}

// Visible reports whether the node's marker is drawn. Nodes whose names
// begin with an underscore are hidden regardless of the draw-nodes toggle.
func (n *Node) Visible(drawNodes bool) bool {
	return drawNodes && !strings.HasPrefix(n.Name, "_")
}

// Schematic holds the components and nodes of one circuit and solves their
// positions on a grid.
//
// Components are added in netlist order; that order is preserved in the
// emitted drawing. A schematic is not safe for concurrent use.
type Schematic struct {
	// NodeSpacing scales solved grid units to drawing units.
	NodeSpacing float64
	// CptSize feeds the fixed offsets of self-contained symbols, such as
	// transformer winding dots.
	CptSize float64

	reg        *Registry
	nodes      map[string]*Node
	nodeOrder  []string
	components map[string]Component
	order      []string
	anon       map[string]int
	solved     bool
}

// New creates an empty schematic backed by the given registry. A nil
// registry selects the built-in component set.
func New(reg *Registry) *Schematic {
	if reg == nil {
		reg = Default()
	}
	return &Schematic{
		NodeSpacing: 2.0,
		CptSize:     1.2,
		reg:         reg,
		nodes:       make(map[string]*Node),
		components:  make(map[string]Component),
		anon:        make(map[string]int),
	}
}

// Registry returns the registry the schematic resolves component types with.
func (s *Schematic) Registry() *Registry { return s.reg }

// Add constructs the component registered under classname and inserts it.
// typ and id form the element name; an empty id is replaced by a
// per-type auto-generated one. net is the element's netlist line without
// options, used verbatim by String.
func (s *Schematic) Add(classname, typ, id, net, optsString string, nodes []string, args ...string) (Component, error) {
	if id == "" {
		s.anon[typ]++
		id = fmt.Sprintf("%s%d", anonPrefix, s.anon[typ])
	}
	name := typ + id
	if _, ok := s.components[name]; ok {
		return nil, errors.New(errors.ErrCodeDuplicateName,
			"%s already defined", name)
	}

	c, err := s.reg.Make(s, classname, typ, id, net, optsString, nodes, args...)
	if err != nil {
		return nil, err
	}

	def, _ := s.reg.Lookup(classname)
	for _, n := range c.VNodes() {
		node, ok := s.nodes[n]
		if !ok {
			node = &Node{Name: n}
			s.nodes[n] = node
			s.nodeOrder = append(s.nodeOrder, n)
		}
		if def.Port {
			node.Port = true
		}
	}

	s.components[name] = c
	s.order = append(s.order, name)
	s.solved = false
	return c, nil
}

// Component returns the component with the given element name.
func (s *Schematic) Component(name string) (Component, error) {
	c, ok := s.components[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownReference,
			"unknown component %s", name)
	}
	return c, nil
}

// Components returns all components in insertion order.
func (s *Schematic) Components() []Component {
	out := make([]Component, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.components[name])
	}
	return out
}

// NodeNames returns all node names in first-seen order.
func (s *Schematic) NodeNames() []string {
	return append([]string{}, s.nodeOrder...)
}

func (s *Schematic) node(name string) (*Node, error) {
	n, ok := s.nodes[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownNode,
			"unknown node %s", name)
	}
	return n, nil
}

// NodePos returns the solved position of the named node.
func (s *Schematic) NodePos(name string) (Pos, error) {
	if !s.solved {
		return Pos{}, errors.New(errors.ErrCodeInternal,
			"node %s queried before layout solve", name)
	}
	n, err := s.node(name)
	if err != nil {
		return Pos{}, err
	}
	return n.Pos, nil
}

// Solved reports whether node positions are up to date.
func (s *Schematic) Solved() bool { return s.solved }

// Solve computes node positions. Each axis is solved independently: first
// every component links the node pairs that must share a coordinate, then
// every component places its separation constraints, and the accumulated
// graph is solved by longest path. Solved grid positions are scaled by
// NodeSpacing.
func (s *Schematic) Solve() error {
	xgraph := layout.New("x")
	ygraph := layout.New("y")

	for _, name := range s.order {
		c := s.components[name]
		if err := c.XLink(xgraph); err != nil {
			return err
		}
		if err := c.YLink(ygraph); err != nil {
			return err
		}
	}
	for _, name := range s.order {
		c := s.components[name]
		if err := c.XPlace(xgraph); err != nil {
			return err
		}
		if err := c.YPlace(ygraph); err != nil {
			return err
		}
	}

	xpos, err := xgraph.Solve()
	if err != nil {
		return err
	}
	ypos, err := ygraph.Solve()
	if err != nil {
		return err
	}

	for name, node := range s.nodes {
		node.Pos = Pos{xpos[name] * s.NodeSpacing, ypos[name] * s.NodeSpacing}
	}
	s.solved = true
	return nil
}

// Draw solves the layout if necessary and emits the complete tikzpicture:
// one named coordinate per node (hidden nodes included, since draw commands
// reference them by name) followed by each component's commands in netlist
// order. Any component error aborts the drawing; there is no partial output.
func (s *Schematic) Draw(cfg DrawConfig) (string, error) {
	if !s.solved {
		if err := s.Solve(); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	b.WriteString("\\begin{tikzpicture}\n")
	for _, name := range s.nodeOrder {
		node := s.nodes[name]
		fmt.Fprintf(&b, "  \\coordinate (%s) at (%s);\n", name, node.Pos)
	}
	for _, name := range s.order {
		part, err := s.components[name].Draw(cfg)
		if err != nil {
			return "", err
		}
		b.WriteString(part)
	}
	b.WriteString("\\end{tikzpicture}\n")
	return b.String(), nil
}
