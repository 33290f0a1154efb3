// Package preview produces quick visual checks of a circuit before
// typesetting it.
//
// # Overview
//
// Two previews are available: a Graphviz connectivity diagram showing which
// components share which electrical nodes, and a scatter plot of the solved
// node positions for debugging the layout pass. Neither preview is the
// final drawing; both exist so a broken netlist can be diagnosed without a
// TeX toolchain.
//
// # Usage
//
// Convert a schematic to DOT format, then render it:
//
//	dot := preview.ToDOT(sch)
//	svg, err := preview.RenderSVG(dot)
//
// Or plot the solved positions:
//
//	png, err := preview.PlotPositions(sch)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process DOT
// rendering and [gonum.org/v1/plot] for the position plot.
package preview
