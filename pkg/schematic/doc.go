// Package schematic converts circuit netlist elements into a 2-D layout and
// circuitikz drawing commands.
//
// # Architecture
//
// The package sits between the netlist parser and the TeX renderer:
//
//   - [Registry]: closed set of component type definitions (tag → family + symbol)
//   - [Schematic]: owns nodes, components, and the solve/draw passes
//   - [Component]: per-family geometry, orientation, and draw-command emission
//   - pkg/layout: per-axis placement constraint solver fed by each component
//
// Each component defines its geometry in a local, unrotated, unit-scaled
// frame. Orientation options (left/right/up/down plus an optional rotate
// offset, mirroring, size, scale) transform that frame. During the layout
// pass every component reduces its transformed geometry to "same coordinate"
// links and "fixed separation" placements per axis; the layout solver
// reconciles all components' constraints into absolute node positions. The
// draw pass then emits one block of circuitikz commands per component using
// the resolved positions.
//
// # Usage
//
//	sch := schematic.New(nil) // default registry
//	sch.Add("R", "R", "1", "R1 1 2 5", "right", []string{"1", "2"}, "5")
//	sch.Add("C", "C", "1", "C1 2 0 1uF", "down", []string{"2", "0"}, "1uF")
//	tikz, err := sch.Draw(schematic.DefaultDrawConfig())
//
// # Errors
//
// Geometry requests on a component without an orientation option fail with
// INVALID_ORIENTATION. Mutual-coupling elements referencing inductors that
// were not declared earlier fail with UNKNOWN_REFERENCE. All errors surface
// synchronously; a failing component aborts the whole draw pass rather than
// emitting partial markup.
//
// # Concurrency
//
// A Schematic and its components are built and consumed within a single
// rendering pass and are not safe for concurrent use.
package schematic
