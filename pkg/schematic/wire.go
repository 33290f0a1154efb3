package schematic

import (
	"fmt"
)

// Wire is a plain connection. With one of the implicit, ground or sground
// options it degenerates to a single-node element drawn as a ground symbol.
type Wire struct {
	OnePort
}

func (c *Wire) implicit() bool {
	return c.opts.Has("implicit") || c.opts.Has("ground") || c.opts.Has("sground")
}

func (c *Wire) Coords() []Pos {
	if c.implicit() {
		return []Pos{{0, 0}}
	}
	return []Pos{{0, 0}, {1, 0}}
}

func (c *Wire) VNodes() []string {
	if c.implicit() {
		return c.nodes[0:1]
	}
	return c.nodes
}

// drawImplicit draws a connection to ground. The glyph hangs off the single
// node at half scale, rotated to point away from the wire direction.
func (c *Wire) drawImplicit(cfg DrawConfig) (string, error) {
	kind := "sground"
	if !c.opts.Has("implicit") && c.opts.Has("ground") {
		kind = "ground"
	}

	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}
	n1 := dnodes[0]
	angle, err := c.Angle()
	if err != nil {
		return "", err
	}

	s := fmt.Sprintf("  \\draw (%s) node[%s,scale=0.5,rotate=%g] {};\n",
		n1, kind, angle+90)

	if c.opts.Has("l") {
		anchor := "south west"
		if c.IsDown() {
			anchor = "north west"
		}
		pos, err := c.pos(n1)
		if err != nil {
			return "", err
		}
		r, err := c.Rotation()
		if err != nil {
			return "", err
		}
		labelAt := pos.Add(r.Apply(Pos{0.25, 0}))
		s += fmt.Sprintf("  \\draw [anchor=%s] (%s) node {%s};\n",
			anchor, labelAt, c.label(cfg))
	}
	return s, nil
}

func (c *Wire) Draw(cfg DrawConfig) (string, error) {
	if c.implicit() {
		return c.drawImplicit(cfg)
	}
	return c.OnePort.Draw(cfg)
}
