package schematic

import (
	"fmt"
)

// Logic is a two-terminal gate (buffer or inverter) drawn as a symbol node
// centred between its nodes.
type Logic struct {
	Base
}

func (c *Logic) Coords() []Pos {
	return []Pos{{0, 0}, {0.75, 0}}
}

func (c *Logic) Draw(cfg DrawConfig) (string, error) {
	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}
	p1, err := c.pos(dnodes[0])
	if err != nil {
		return "", err
	}
	p2, err := c.pos(dnodes[1])
	if err != nil {
		return "", err
	}
	angle, err := c.Angle()
	if err != nil {
		return "", err
	}

	centre := p1.Add(p2).Scale(0.5)
	s := fmt.Sprintf("  \\draw (%s) node[align=left, %s, %s, rotate=%g] (%s) {};\n",
		centre, c.def.Symbol, c.opts.formatRest(), angle, c.name)
	s += labelNode(centre, c.label(cfg))

	marks, err := c.drawNodes(cfg)
	if err != nil {
		return "", err
	}
	return s + marks, nil
}
