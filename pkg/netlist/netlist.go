// Package netlist parses circuit netlists into schematic components.
//
// A netlist is line oriented. Each element line has the form
//
//	Name node... [value...]; opt, opt=val, ...
//
// where Name is a registered component type tag followed by an identifier
// (R1, Vin, SW2). Everything after the first semicolon is the option
// string. Lines starting with % or # are comments, and blank lines are
// skipped. A keyword argument naming a registered specialization (zener,
// spdt, opamp, pnp, ...) selects the subtype and adjusts the expected node
// count.
package netlist

import (
	"bufio"
	"strings"

	"github.com/aslanistan/schemtex/pkg/errors"
	"github.com/aslanistan/schemtex/pkg/schematic"
)

// Entry is one parsed element line.
type Entry struct {
	Classname  string   // registered definition, subtype included
	Type       string   // base type tag from the element name
	ID         string   // identifier from the element name, may be empty
	Net        string   // the line up to the option separator
	OptsString string   // raw option text after the separator
	Nodes      []string // node names, length fixed by the definition
	Args       []string // remaining positional arguments
	Line       int      // 1-based source line
}

// Parse parses a netlist against the given registry. A nil registry selects
// the built-in component set.
func Parse(input string, reg *schematic.Registry) ([]Entry, error) {
	if reg == nil {
		reg = schematic.Default()
	}

	var entries []Entry
	scanner := bufio.NewScanner(strings.NewReader(input))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseLine(line, lineno, reg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseLine(line string, lineno int, reg *schematic.Registry) (Entry, error) {
	net, optsString, _ := strings.Cut(line, ";")
	net = strings.TrimSpace(net)
	optsString = strings.TrimSpace(optsString)

	fields := strings.Fields(net)
	if len(fields) == 0 {
		return Entry{}, errors.New(errors.ErrCodeInvalidNetlist,
			"line %d: empty element before options", lineno)
	}

	typ, id, err := reg.SplitName(fields[0])
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeInvalidNetlist, err,
			"line %d", lineno)
	}
	rest := fields[1:]

	// A keyword argument may select a specialization, possibly with a
	// different node count (SW is two nodes, SWspdt three).
	classname := typ
	for i, tok := range rest {
		if sub, ok := reg.Subtype(typ, tok); ok {
			classname = sub
			rest = append(append([]string{}, rest[:i]...), rest[i+1:]...)
			break
		}
	}

	def, _ := reg.Lookup(classname)
	want := def.Family.NumNodes()
	if len(rest) < want {
		return Entry{}, errors.New(errors.ErrCodeInvalidNetlist,
			"line %d: %s expects %d nodes, got %d", lineno, fields[0], want, len(rest))
	}

	return Entry{
		Classname:  classname,
		Type:       typ,
		ID:         id,
		Net:        net,
		OptsString: optsString,
		Nodes:      rest[:want],
		Args:       rest[want:],
		Line:       lineno,
	}, nil
}

// Build parses the netlist and assembles a solvable schematic from it.
func Build(input string, reg *schematic.Registry) (*schematic.Schematic, error) {
	entries, err := Parse(input, reg)
	if err != nil {
		return nil, err
	}
	sch := schematic.New(reg)
	for _, e := range entries {
		if _, err := sch.Add(e.Classname, e.Type, e.ID, e.Net, e.OptsString, e.Nodes, e.Args...); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "line %d", e.Line)
		}
	}
	return sch, nil
}
