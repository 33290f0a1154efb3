package schematic

import (
	"fmt"
)

// Transistor is a three-terminal device drawn as a circuitikz node with
// anchor wires out to the electrical nodes. The local coordinates depend on
// the device family: the gate/base offsets differ between BJTs, JFETs and
// MOSFETs so the anchors line up with the symbol artwork.
type Transistor struct {
	Base

	npos [3]Pos
	ppos [3]Pos
}

func newTransistor(family Family) *Transistor {
	c := &Transistor{}
	switch family {
	case FamilyJFET:
		c.npos = [3]Pos{{1, 1.5}, {0, 0.48}, {1, 0}}
		c.ppos = [3]Pos{{1, 0}, {0, 1.02}, {1, 1.5}}
	case FamilyMOSFET:
		c.npos = [3]Pos{{0.85, 1.52}, {-0.25, 0.76}, {0.85, 0}}
		c.ppos = [3]Pos{{0.85, 0}, {-0.25, 0.76}, {0.85, 1.52}}
	default:
		c.npos = [3]Pos{{1, 1.5}, {0, 0.75}, {1, 0}}
		c.ppos = [3]Pos{{1, 0}, {0, 0.75}, {1, 1.5}}
	}
	return c
}

// Coords returns the terminal layout. Opposite-polarity devices use the
// flipped layout so the arrow points the right way, and mirroring swaps it
// back; the two conditions cancel.
func (c *Transistor) Coords() []Pos {
	flipped := c.def.Inverted != c.Mirror()
	if flipped {
		return c.ppos[:]
	}
	return c.npos[:]
}

func (c *Transistor) Draw(cfg DrawConfig) (string, error) {
	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}
	p1, err := c.pos(dnodes[0])
	if err != nil {
		return "", err
	}
	p3, err := c.pos(dnodes[2])
	if err != nil {
		return "", err
	}
	angle, err := c.Angle()
	if err != nil {
		return "", err
	}
	centre := p1.Add(p3).Scale(0.5)

	s := fmt.Sprintf("  \\draw (%s) node[%s, %s, scale=2, rotate=%g] (%s) {};\n",
		centre, c.def.Symbol, c.opts.formatRest(), angle, c.name)
	s += labelNode(centre, c.label(cfg))

	// Wires from the symbol anchors out to the node coordinates.
	anchors := [3]string{"D", "G", "S"}
	if c.def.Symbol == "npn" || c.def.Symbol == "pnp" {
		anchors = [3]string{"C", "B", "E"}
	}
	s += fmt.Sprintf("  \\draw (%s.%s) -- (%s) (%s.%s) -- (%s) (%s.%s) -- (%s);\n",
		c.name, anchors[0], dnodes[0],
		c.name, anchors[1], dnodes[1],
		c.name, anchors[2], dnodes[2])

	marks, err := c.drawNodes(cfg)
	if err != nil {
		return "", err
	}
	return s + marks, nil
}
