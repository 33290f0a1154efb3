package schematic

import (
	"fmt"
)

// SPDT is a single-pole double-throw switch with node order
// (common, throw1, throw2).
type SPDT struct {
	Base
}

func (c *SPDT) Coords() []Pos {
	return []Pos{{0, 0.15}, {0.6, 0.3}, {0.6, 0}}
}

func (c *SPDT) Draw(cfg DrawConfig) (string, error) {
	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}
	var p [3]Pos
	for i, n := range dnodes {
		if p[i], err = c.pos(n); err != nil {
			return "", err
		}
	}
	angle, err := c.Angle()
	if err != nil {
		return "", err
	}

	centre := p[0].Scale(0.5).Add(p[1].Add(p[2]).Scale(0.25))
	s := fmt.Sprintf("  \\draw (%s) node[spdt, %s, rotate=%g] (%s) {};\n",
		centre, c.opts.formatRest(), angle, c.name)

	// The label sits below the switch at a fixed offset; it does not track
	// rotation.
	labelAt := p[0].Add(p[2]).Scale(0.5).Add(Pos{0, -0.5})
	s += labelNode(labelAt, c.label(cfg))

	marks, err := c.drawNodes(cfg)
	if err != nil {
		return "", err
	}
	return s + marks, nil
}
