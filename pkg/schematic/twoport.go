package schematic

import (
	"fmt"

	"github.com/aslanistan/schemtex/pkg/errors"
)

// TwoPort is a generic four-terminal network drawn as a labelled box. Node
// order is (out+, out-, in+, in-), so the box's right edge carries the first
// two nodes.
type TwoPort struct {
	Base
}

func (c *TwoPort) Coords() []Pos {
	return []Pos{{1, 1}, {1, 0}, {0, 1}, {0, 0}}
}

func (c *TwoPort) Draw(cfg DrawConfig) (string, error) {
	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}
	var p [4]Pos
	for i, n := range dnodes {
		if p[i], err = c.pos(n); err != nil {
			return "", err
		}
	}

	// Inset the box a little past the terminals.
	width := p[1].X - p[3].X
	const extra = 0.25
	p[0].Y += extra
	p[1].Y -= extra
	p[2].Y += extra
	p[3].Y -= extra

	centre := p[0].Add(p[1]).Add(p[2]).Add(p[3]).Scale(0.25)
	top := Pos{centre.X, p[0].Y + 0.15}

	title := "two-port"
	if len(c.args) > 0 {
		title = c.args[0] + "-parameter two-port"
	}

	s := fmt.Sprintf("  \\draw (%s) -- (%s) -- (%s) -- (%s) -- (%s);\n",
		p[3], p[2], p[0], p[1], p[3])
	s += fmt.Sprintf("  \\draw (%s) node[minimum width=%.1f] (%s) {%s};\n",
		centre, width, c.name, title)
	s += fmt.Sprintf("  \\draw (%s) node[minimum width=%.1f] {%s};\n",
		top, width, c.label(cfg))

	marks, err := c.drawNodes(cfg)
	if err != nil {
		return "", err
	}
	return s + marks, nil
}

// drawWindings emits the transformer core shared by TF and the mutual
// coupling element: a polarity dot beside each winding, the name label
// between them, and optionally the coupling arc.
func drawWindings(c *Base, cfg DrawConfig) (string, error) {
	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}
	var p [4]Pos
	for i, n := range dnodes {
		if p[i], err = c.pos(n); err != nil {
			return "", err
		}
	}

	const xoffset = 0.1
	yoffset := 0.5 * c.sch.CptSize

	primaryDot := Pos{p[2].X - xoffset, 0.5*(p[2].Y+p[3].Y) + yoffset}
	secondaryDot := Pos{p[0].X + xoffset, 0.5*(p[0].Y+p[1].Y) + yoffset}

	centre := p[0].Add(p[1]).Add(p[2]).Add(p[3]).Scale(0.25)
	labelPos := Pos{centre.X, primaryDot.Y}

	s := fmt.Sprintf("  \\draw (%s) node[circ] {};\n", primaryDot)
	s += fmt.Sprintf("  \\draw (%s) node[circ] {};\n", secondaryDot)
	s += fmt.Sprintf("  \\draw (%s) node[minimum width=%.1f] (%s) {%s};\n",
		labelPos, 0.5, c.name, c.label(cfg))

	if cfg.Link {
		width := p[0].X - p[2].X
		arcPos := Pos{(p[0].X + p[2].X) / 2, secondaryDot.Y - width/2 + 0.2}
		s += fmt.Sprintf("  \\draw [<->] ([shift=(45:%.2f)]%s) arc(45:135:%.2f);\n",
			width/2, arcPos, width/2)
	}
	return s, nil
}

// TF is a transformer: two explicit inductor windings plus the shared core.
type TF struct {
	TwoPort
}

func (c *TF) Draw(cfg DrawConfig) (string, error) {
	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}

	s := fmt.Sprintf("  \\draw (%s) to [inductor] (%s);\n", dnodes[2], dnodes[3])
	s += fmt.Sprintf("  \\draw (%s) to [inductor] (%s);\n", dnodes[0], dnodes[1])

	core, err := drawWindings(&c.Base, cfg)
	if err != nil {
		return "", err
	}
	s += core

	marks, err := c.drawNodes(cfg)
	if err != nil {
		return "", err
	}
	return s + marks, nil
}

// MutualCoupling couples two previously defined inductors. It has no nodes
// of its own: the drawn nodes are borrowed from the named inductors and
// resolved when first needed, so the element may appear anywhere in the
// netlist after both inductors.
type MutualCoupling struct {
	TwoPort

	lname1 string
	lname2 string
}

// Inductors returns the names of the coupled elements.
func (c *MutualCoupling) Inductors() (string, string) {
	return c.lname1, c.lname2
}

func (c *MutualCoupling) DNodes() ([]string, error) {
	l1, err := c.sch.Component(c.lname1)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnknownReference, err,
			"%s: coupled inductor %s not defined", c.name, c.lname1)
	}
	l2, err := c.sch.Component(c.lname2)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnknownReference, err,
			"%s: coupled inductor %s not defined", c.name, c.lname2)
	}
	return append(append([]string{}, l1.Nodes()...), l2.Nodes()...), nil
}

func (c *MutualCoupling) Draw(cfg DrawConfig) (string, error) {
	return drawWindings(&c.Base, cfg)
}
