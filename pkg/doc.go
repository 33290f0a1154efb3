// Package pkg provides the core libraries for schemtex circuit typesetting.
//
// # Overview
//
// Schemtex turns SPICE-like circuit netlists into circuitikz drawing
// commands that LaTeX can typeset. The pkg directory is organized by stage:
//
//  1. [netlist] - Netlist parsing (element lines → typed entries)
//  2. [schematic] - Component geometry, placement constraints, draw commands
//  3. [layout] - Per-axis constraint solver (links + separations → positions)
//  4. [tex] - Label escaping and standalone document wrapping
//  5. [preview] - Graphviz connectivity diagrams and position plots
//  6. [cache] - Content-addressed caching of rendered output
//
// # Architecture
//
// The typical data flow through schemtex:
//
//	Netlist file
//	         ↓
//	    [netlist] package (parse element lines)
//	         ↓
//	    [schematic] package (component geometry + constraints)
//	         ↓
//	    [layout] package (solve node positions per axis)
//	         ↓
//	    circuitikz output via [schematic] + [tex]
//
// # Quick Start
//
// Parse a netlist and render it:
//
//	import (
//	    "github.com/aslanistan/schemtex/pkg/netlist"
//	    "github.com/aslanistan/schemtex/pkg/schematic"
//	)
//
//	sch, _ := netlist.Build("R1 1 2 5; right\nW 2 0; down, ground\n", nil)
//	out, _ := sch.Draw(schematic.DefaultDrawConfig())
//
// # Supporting Packages
//
// [errors] - Structured errors with machine-readable codes, used across all
// packages so the CLI can distinguish user mistakes from internal faults.
//
// [buildinfo] - Build-time version information injected via ldflags.
package pkg
