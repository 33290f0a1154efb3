package schematic

import (
	"fmt"
)

// Opamp is a single-ended operational amplifier. Node order is
// (out, ground, in+, in-); the ground node is electrical only and never
// drawn. The symbol is scaled up by two and connected to its nodes with
// right-angle wires, and the label is drawn as a separate node so it is not
// scaled with the artwork.
type Opamp struct {
	Base
}

var (
	opampPpos = []Pos{{2.4, 0}, {0, 0.5}, {0, -0.5}}
	opampNpos = []Pos{{2.4, 0}, {0, -0.5}, {0, 0.5}}
)

func (c *Opamp) VNodes() []string {
	return []string{c.nodes[0], c.nodes[2], c.nodes[3]}
}

func (c *Opamp) Coords() []Pos {
	if c.Mirror() {
		return opampNpos
	}
	return opampPpos
}

func (c *Opamp) Draw(cfg DrawConfig) (string, error) {
	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}
	p1, err := c.pos(dnodes[0])
	if err != nil {
		return "", err
	}
	p3, err := c.pos(dnodes[1])
	if err != nil {
		return "", err
	}
	p4, err := c.pos(dnodes[2])
	if err != nil {
		return "", err
	}
	angle, err := c.Angle()
	if err != nil {
		return "", err
	}

	centre := p3.Add(p4).Scale(0.25).Add(p1.Scale(0.5))

	// xscale and yscale scale by length, not area. The unmirrored symbol
	// needs a negative yscale to put the + input on top.
	scale := c.Scale()
	yscale := 2 * 1.019 * scale
	if !c.Mirror() {
		yscale = -yscale
	}

	s := fmt.Sprintf("  \\draw (%s) node[op amp, %s, xscale=%.3f, yscale=%.3f, rotate=%g] (%s) {};\n",
		centre, c.opts.formatRest(), 2*1.01*scale, yscale, angle, c.name)
	s += fmt.Sprintf("  \\draw (%s.out) |- (%s);\n", c.name, dnodes[0])
	s += fmt.Sprintf("  \\draw (%s.+) |- (%s);\n", c.name, dnodes[1])
	s += fmt.Sprintf("  \\draw (%s.-) |- (%s);\n", c.name, dnodes[2])
	s += labelNode(centre, c.label(cfg))

	marks, err := c.drawNodes(cfg)
	if err != nil {
		return "", err
	}
	return s + marks, nil
}

// FDOpamp is a fully differential operational amplifier with node order
// (out+, out-, in+, in-).
type FDOpamp struct {
	Base
}

var (
	fdOpampNpos = []Pos{{2.05, 1}, {2.05, 0}, {0, 0}, {0, 1}}
	fdOpampPpos = []Pos{{2.05, -1}, {2.05, 0}, {0, 0}, {0, -1}}
)

func (c *FDOpamp) Coords() []Pos {
	if c.Mirror() {
		return fdOpampNpos
	}
	return fdOpampPpos
}

func (c *FDOpamp) Draw(cfg DrawConfig) (string, error) {
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
	angle, err := c.Angle()
	if err != nil {
		return "", err
	}
	r, err := c.Rotation()
	if err != nil {
		return "", err
	}

	scale := c.Scale()
	centre := p[0].Add(p[1]).Add(p[2]).Add(p[3]).Scale(0.25).
		Add(r.Apply(Pos{0.15, 0}).Scale(scale))

	yscale := 2 * 1.02 * scale
	if !c.Mirror() {
		yscale = -yscale
	}

	s := fmt.Sprintf("  \\draw (%s) node[fd op amp, %s, xscale=%.3f, yscale=%.3f, rotate=%g] (%s) {};\n",
		centre, c.opts.formatRest(), 2*1.01*scale, yscale, angle, c.name)
	s += fmt.Sprintf("  \\draw (%s.out +) |- (%s);\n", c.name, dnodes[0])
	s += fmt.Sprintf("  \\draw (%s.out -) |- (%s);\n", c.name, dnodes[1])
	s += fmt.Sprintf("  \\draw (%s.+) |- (%s);\n", c.name, dnodes[2])
	s += fmt.Sprintf("  \\draw (%s.-) |- (%s);\n", c.name, dnodes[3])
	s += labelNode(centre, c.label(cfg))

	marks, err := c.drawNodes(cfg)
	if err != nil {
		return "", err
	}
	return s + marks, nil
}
