package schematic

import (
	"maps"
	"slices"

	"github.com/aslanistan/schemtex/pkg/errors"
)

// Family identifies the structural geometry shared by a group of component
// types. The set is closed: every netlist type tag maps onto exactly one of
// these, and each family fixes the electrical node count.
type Family int

const (
	FamilyOnePort Family = iota // two-terminal element
	FamilyVCS                   // voltage-controlled source: 4 nodes, draws 2
	FamilyCCS                   // current-controlled source: control via args
	FamilyBJT                   // bipolar transistor
	FamilyJFET                  // junction FET
	FamilyMOSFET                // MOS FET
	FamilyTwoPort               // generic two-port box
	FamilyTF                    // transformer
	FamilyK                     // mutual coupling between two named inductors
	FamilyOpamp                 // single-ended op amp
	FamilyFDOpamp               // fully differential op amp
	FamilySPDT                  // single-pole double-throw switch
	FamilyLogic                 // logic gate
	FamilyWire                  // wire, including implicit grounds
)

// NumNodes is the electrical node count fixed by the family.
func (f Family) NumNodes() int {
	switch f {
	case FamilyVCS, FamilyTwoPort, FamilyTF, FamilyOpamp, FamilyFDOpamp:
		return 4
	case FamilyBJT, FamilyJFET, FamilyMOSFET, FamilySPDT:
		return 3
	case FamilyK:
		return 0
	default:
		return 2
	}
}

// Def describes one registered component type.
type Def struct {
	Family   Family
	Symbol   string // circuitikz symbol tag
	Describe string

	Source   bool // terminal order swapped when drawn (sources)
	Inverted bool // opposite-polarity transistor (PNP, p-channel)
	Port     bool // attached nodes drawn as open circles
}

// Registry maps netlist type tags to component definitions. It is built once
// at startup and read-only thereafter; construct isolated instances in tests
// rather than sharing process state.
type Registry struct {
	defs map[string]Def
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Def)}
}

// Register adds a definition under the given type tag.
func (r *Registry) Register(tag string, def Def) {
	r.defs[tag] = def
}

// Lookup returns the definition for tag.
func (r *Registry) Lookup(tag string) (Def, bool) {
	def, ok := r.defs[tag]
	return def, ok
}

// Tags returns all registered type tags, sorted.
func (r *Registry) Tags() []string {
	return slices.Sorted(maps.Keys(r.defs))
}

// SplitName splits a netlist element name such as "R1" or "SWspdt2" into its
// registered type tag and identifier, preferring the longest matching tag.
func (r *Registry) SplitName(name string) (tag, id string, err error) {
	best := ""
	for t := range r.defs {
		if len(t) > len(best) && len(t) <= len(name) && name[:len(t)] == t {
			best = t
		}
	}
	if best == "" {
		return "", "", errors.New(errors.ErrCodeUnknownType,
			"no component type matches element name %q", name)
	}
	return best, name[len(best):], nil
}

// Subtype reports whether tag+kind names a registered specialization, e.g.
// ("D", "zener") → "Dzener". Netlists select specializations with a keyword
// argument after the node list.
func (r *Registry) Subtype(tag, kind string) (string, bool) {
	sub := tag + kind
	if _, ok := r.defs[sub]; ok && kind != "" {
		return sub, true
	}
	return tag, false
}

// Make instantiates the component registered under classname. The tag and id
// become the element's name; nodes must match the family's fixed node count.
// This is the single construction point for all component variants.
func (r *Registry) Make(sch *Schematic, classname, tag, id, net, optsString string, nodes []string, args ...string) (Component, error) {
	def, ok := r.defs[classname]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownType, "unknown component type %q", classname)
	}
	if want := def.Family.NumNodes(); len(nodes) != want {
		return nil, errors.New(errors.ErrCodeInvalidNetlist,
			"%s%s: expected %d nodes, got %d", tag, id, want, len(nodes))
	}
	opts := ParseOptions(optsString)

	switch def.Family {
	case FamilyOnePort, FamilyCCS, FamilyWire:
		c := &OnePort{}
		if def.Family == FamilyWire {
			w := &Wire{}
			w.init(w, sch, def, tag, id, net, opts, nodes, args)
			return w, nil
		}
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	case FamilyVCS:
		c := &VCS{}
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	case FamilyBJT, FamilyJFET, FamilyMOSFET:
		c := newTransistor(def.Family)
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	case FamilyTwoPort:
		c := &TwoPort{}
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	case FamilyTF:
		c := &TF{}
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	case FamilyK:
		if len(args) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidNetlist,
				"%s%s: mutual coupling needs two inductor names", tag, id)
		}
		c := &MutualCoupling{lname1: args[0], lname2: args[1]}
		c.init(c, sch, def, tag, id, net, opts, nodes, args[2:])
		return c, nil
	case FamilyOpamp:
		c := &Opamp{}
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	case FamilyFDOpamp:
		c := &FDOpamp{}
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	case FamilySPDT:
		c := &SPDT{}
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	case FamilyLogic:
		c := &Logic{}
		c.init(c, sch, def, tag, id, net, opts, nodes, args)
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeInternal, "family %d has no constructor", def.Family)
}

// Default returns the registry of built-in component types.
func Default() *Registry {
	r := NewRegistry()

	r.Register("C", Def{Family: FamilyOnePort, Symbol: "C", Describe: "Capacitor"})

	r.Register("D", Def{Family: FamilyOnePort, Symbol: "D", Describe: "Diode"})
	r.Register("Dled", Def{Family: FamilyOnePort, Symbol: "leD", Describe: "LED"})
	r.Register("Dphoto", Def{Family: FamilyOnePort, Symbol: "pD", Describe: "Photo diode"})
	r.Register("Dschottky", Def{Family: FamilyOnePort, Symbol: "zD", Describe: "Schottky diode"})
	r.Register("Dtunnel", Def{Family: FamilyOnePort, Symbol: "tD", Describe: "Tunnel diode"})
	r.Register("Dzener", Def{Family: FamilyOnePort, Symbol: "zD", Describe: "Zener diode"})

	r.Register("E", Def{Family: FamilyVCS, Symbol: "american controlled voltage source", Describe: "VCVS", Source: true})
	r.Register("Eopamp", Def{Family: FamilyOpamp, Symbol: "op amp", Describe: "Opamp"})
	r.Register("Efdopamp", Def{Family: FamilyFDOpamp, Symbol: "fd op amp", Describe: "Fully differential opamp"})
	r.Register("F", Def{Family: FamilyVCS, Symbol: "american controlled current source", Describe: "CCCS", Source: true})
	r.Register("G", Def{Family: FamilyCCS, Symbol: "american controlled current source", Describe: "VCCS", Source: true})
	r.Register("H", Def{Family: FamilyCCS, Symbol: "american controlled voltage source", Describe: "CCVS", Source: true})

	r.Register("I", Def{Family: FamilyOnePort, Symbol: "I", Describe: "Current source", Source: true})
	r.Register("sI", Def{Family: FamilyOnePort, Symbol: "I", Describe: "Current source", Source: true})
	r.Register("Isin", Def{Family: FamilyOnePort, Symbol: "sI", Describe: "Sinusoidal current source", Source: true})
	r.Register("Idc", Def{Family: FamilyOnePort, Symbol: "I", Describe: "DC current source", Source: true})
	r.Register("Iac", Def{Family: FamilyOnePort, Symbol: "sI", Describe: "AC current source", Source: true})

	r.Register("J", Def{Family: FamilyJFET, Symbol: "njfet", Describe: "N JFET transistor"})
	r.Register("Jnjf", Def{Family: FamilyJFET, Symbol: "njfet", Describe: "N JFET transistor"})
	r.Register("Jpjf", Def{Family: FamilyJFET, Symbol: "pjfet", Describe: "P JFET transistor", Inverted: true})

	r.Register("L", Def{Family: FamilyOnePort, Symbol: "L", Describe: "Inductor"})

	r.Register("M", Def{Family: FamilyMOSFET, Symbol: "nmos", Describe: "N MOSFET transistor"})
	r.Register("Mnmos", Def{Family: FamilyMOSFET, Symbol: "nmos", Describe: "N channel MOSFET transistor"})
	r.Register("Mpmos", Def{Family: FamilyMOSFET, Symbol: "pmos", Describe: "P channel MOSFET transistor", Inverted: true})

	r.Register("O", Def{Family: FamilyOnePort, Symbol: "open", Describe: "Open circuit"})
	r.Register("P", Def{Family: FamilyOnePort, Symbol: "open", Describe: "Port", Port: true})

	r.Register("Q", Def{Family: FamilyBJT, Symbol: "npn", Describe: "NPN transistor"})
	r.Register("Qpnp", Def{Family: FamilyBJT, Symbol: "pnp", Describe: "PNP transistor", Inverted: true})
	r.Register("Qnpn", Def{Family: FamilyBJT, Symbol: "npn", Describe: "NPN transistor"})

	r.Register("R", Def{Family: FamilyOnePort, Symbol: "R", Describe: "Resistor"})

	r.Register("SW", Def{Family: FamilyOnePort, Symbol: "closing switch", Describe: "Switch"})
	r.Register("SWno", Def{Family: FamilyOnePort, Symbol: "closing switch", Describe: "Normally open switch"})
	r.Register("SWnc", Def{Family: FamilyOnePort, Symbol: "opening switch", Describe: "Normally closed switch"})
	r.Register("SWpush", Def{Family: FamilyOnePort, Symbol: "push button", Describe: "Pushbutton switch"})
	r.Register("SWspdt", Def{Family: FamilySPDT, Symbol: "spdt", Describe: "SPDT switch"})

	r.Register("TF", Def{Family: FamilyTF, Symbol: "transformer", Describe: "Transformer"})
	r.Register("TP", Def{Family: FamilyTwoPort, Symbol: "", Describe: "Two port"})
	r.Register("K", Def{Family: FamilyK, Symbol: "transformer", Describe: "Mutual coupling"})

	r.Register("Ubuffer", Def{Family: FamilyLogic, Symbol: "buffer", Describe: "Buffer"})
	r.Register("Uinverter", Def{Family: FamilyLogic, Symbol: "american not port", Describe: "Inverter"})

	r.Register("V", Def{Family: FamilyOnePort, Symbol: "V", Describe: "Voltage source", Source: true})
	r.Register("sV", Def{Family: FamilyOnePort, Symbol: "V", Describe: "Voltage source", Source: true})
	r.Register("Vsin", Def{Family: FamilyOnePort, Symbol: "sV", Describe: "Sinusoidal voltage source", Source: true})
	r.Register("Vdc", Def{Family: FamilyOnePort, Symbol: "V", Describe: "DC voltage source", Source: true})
	r.Register("Vstep", Def{Family: FamilyOnePort, Symbol: "V", Describe: "Step voltage source", Source: true})
	r.Register("Vac", Def{Family: FamilyOnePort, Symbol: "sV", Describe: "AC voltage source", Source: true})

	r.Register("W", Def{Family: FamilyWire, Symbol: "short", Describe: "Wire"})
	r.Register("Y", Def{Family: FamilyOnePort, Symbol: "european resistor", Describe: "Admittance"})
	r.Register("Z", Def{Family: FamilyOnePort, Symbol: "european resistor", Describe: "Impedance"})

	return r
}
