package schematic

import (
	"fmt"
	"strings"
)

// OnePort is a two-terminal element drawn along the line between its nodes.
type OnePort struct {
	Base
}

func (c *OnePort) Coords() []Pos {
	return []Pos{{0, 0}, {1, 0}}
}

// resolveOnePortOpts rewrites the shorthand annotation keys (v, vr, i, ir, l)
// into their placed forms and picks the label side. circuitikz puts voltage
// marks and labels on opposite sides of the element; which side is "up"
// depends on the orientation and on whether the element is a source. The
// input options are not modified.
func resolveOnePortOpts(opts Options, source, horizontal, vertical bool) (Options, string) {
	labelPos := "_"
	voltagePos := "^"
	if source {
		if horizontal {
			labelPos = "^"
			voltagePos = "_"
		}
	} else if vertical {
		labelPos = "^"
		voltagePos = "_"
	}

	out := opts.Clone()
	if v, ok := out["v"]; ok {
		delete(out, "v")
		out["v"+voltagePos] = v
	}
	if v, ok := out["vr"]; ok {
		delete(out, "vr")
		out["v"+voltagePos+">"] = v
	}
	// The current mark goes on the label side, away from the voltage marks.
	currentPos := labelPos
	if v, ok := out["i"]; ok {
		delete(out, "i")
		out["i"+currentPos] = v
	}
	if v, ok := out["ir"]; ok {
		delete(out, "ir")
		out["i"+currentPos+"<"] = v
	}
	if v, ok := out["l"]; ok {
		delete(out, "l")
		out["l"+labelPos] = v
	}
	return out, labelPos
}

func (c *OnePort) Draw(cfg DrawConfig) (string, error) {
	dnodes, err := c.self.DNodes()
	if err != nil {
		return "", err
	}
	n1, n2 := dnodes[0], dnodes[1]

	symbol := c.def.Symbol
	if c.typ == "R" && c.opts.Has("variable") {
		symbol = "vR"
	}

	// circuitikz expects the positive node first, except for voltage and
	// current sources, which are drawn backwards.
	if c.def.Source {
		n1, n2 = n2, n1
	}

	opts, labelPos := resolveOnePortOpts(c.opts, c.def.Source,
		c.IsHorizontal(), c.IsVertical())

	node1, err := c.sch.node(n1)
	if err != nil {
		return "", err
	}
	node2, err := c.sch.node(n2)
	if err != nil {
		return "", err
	}
	nodeStr := c.nodeStr(node1, node2, cfg)

	argsStr := strings.Join([]string{
		opts.formatRest(),
		opts.format(voltageKeys),
		opts.format(currentKeys),
	}, ",")

	labelStr := ""
	idLabel, valueLabel := c.idLabel(), c.valueLabel()
	switch {
	case cfg.LabelIDs && cfg.LabelValues && idLabel != "" && valueLabel != "":
		labelStr = fmt.Sprintf("l%s={%s=%s}", labelPos, idLabel, valueLabel)
	case cfg.LabelIDs && idLabel != "":
		labelStr = fmt.Sprintf("l%s=%s", labelPos, idLabel)
	case cfg.LabelValues && valueLabel != "":
		labelStr = fmt.Sprintf("l%s=%s", labelPos, valueLabel)
	}
	// An explicit label option overrides the generated one.
	if explicit := opts.format(labelKeys); explicit != "" {
		labelStr = explicit
	}

	return fmt.Sprintf("  \\draw (%s) to [align=right,%s,%s,%s,%s,n=%s] (%s);\n",
		n1, symbol, labelStr, argsStr, nodeStr, c.name, n2), nil
}

// VCS is a voltage-controlled source. The first two nodes are the output
// terminals; the controlling pair affects only the electrical netlist, not
// the drawing.
type VCS struct {
	OnePort
}

func (c *VCS) VNodes() []string {
	return c.nodes[0:2]
}

// labelNode formats the free-standing text label placed at the centre of
// self-contained symbols. The label node is deliberately unscaled.
func labelNode(centre Pos, label string) string {
	return fmt.Sprintf("  \\draw (%s) node[] {%s};\n", centre, label)
}
