package schematic

import (
	"fmt"
	"math"
)

// Pos is a point in schematic coordinates.
type Pos struct {
	X, Y float64
}

// String formats the point the way TikZ coordinate expressions expect,
// e.g. "1.50,0.75".
func (p Pos) String() string {
	return fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
}

// Add returns p + q.
func (p Pos) Add(q Pos) Pos {
	return Pos{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by k.
func (p Pos) Scale(k float64) Pos {
	return Pos{p.X * k, p.Y * k}
}

// Matrix is a 2x2 rotation matrix applied to row-vector coordinates.
type Matrix [2][2]float64

// Apply right-multiplies the row vector p by the matrix.
func (m Matrix) Apply(p Pos) Pos {
	return Pos{
		X: p.X*m[0][0] + p.Y*m[1][0],
		Y: p.X*m[0][1] + p.Y*m[1][1],
	}
}

// exactRotations holds drift-free matrices for the axis-aligned angles.
// Using exact integer entries here keeps coordinate comparisons in the
// layout pass reliable; trig would give 6.1e-17 instead of 0.
var exactRotations = map[float64]Matrix{
	0:    {{1, 0}, {0, 1}},
	90:   {{0, 1}, {-1, 0}},
	180:  {{-1, 0}, {0, -1}},
	-180: {{-1, 0}, {0, -1}},
	-90:  {{0, -1}, {1, 0}},
}

// rotationMatrix returns the rotation matrix for angle degrees.
func rotationMatrix(angle float64) Matrix {
	if m, ok := exactRotations[angle]; ok {
		return m
	}
	t := angle / 180.0 * math.Pi
	return Matrix{
		{math.Cos(t), math.Sin(t)},
		{-math.Sin(t), math.Cos(t)},
	}
}
