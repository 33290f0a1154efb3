// Package layout solves one-axis placement constraints into node coordinates.
//
// Each schematic component knows only its own relative shape. During the
// layout pass it registers two kinds of constraint per axis:
//
//   - Link(a, b): nodes a and b share the same coordinate on this axis
//   - Add(a, b, sep): node b sits sep units beyond node a on this axis
//
// A [Graph] collects these constraints for a single axis (one instance for x,
// one for y). [Graph.Solve] merges linked nodes into groups with union-find,
// then runs a longest-path pass over the separation edges so every constraint
// is satisfied with the smallest non-negative coordinates.
//
// # Usage
//
//	xg := layout.New("x")
//	xg.Link("1", "2")       // same column
//	xg.Add("1", "3", 2.0)   // node 3 two units right of node 1
//	pos, err := xg.Solve()
//
// A Graph is not safe for concurrent use.
package layout

import (
	"math"
	"sort"

	"github.com/aslanistan/schemtex/pkg/errors"
)

// sepEdge is a required offset between two node groups on one axis.
type sepEdge struct {
	from, to string
	sep      float64
}

// Graph accumulates placement constraints for a single axis.
type Graph struct {
	axis   string
	parent map[string]string // union-find forest over node names
	edges  []sepEdge
	order  []string // registration order, for deterministic iteration
}

// New creates an empty constraint graph for the named axis ("x" or "y").
// The axis name only appears in error messages.
func New(axis string) *Graph {
	return &Graph{
		axis:   axis,
		parent: make(map[string]string),
	}
}

// Nodes returns all registered node names in first-seen order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Link records that a and b must share the same coordinate on this axis.
func (g *Graph) Link(a, b string) {
	ra, rb := g.find(a), g.find(b)
	if ra != rb {
		g.parent[rb] = ra
	}
}

// Add records that b's coordinate must exceed a's by sep on this axis.
// A negative sep is normalized by swapping the endpoints. A zero sep is
// equivalent to Link.
func (g *Graph) Add(a, b string, sep float64) {
	g.register(a)
	g.register(b)
	if sep == 0 {
		g.Link(a, b)
		return
	}
	if sep < 0 {
		a, b, sep = b, a, -sep
	}
	g.edges = append(g.edges, sepEdge{from: a, to: b, sep: sep})
}

// Solve resolves all constraints into a coordinate per node. Coordinates are
// shifted so the smallest is exactly 0. Returns an INVALID_LAYOUT error when
// the separation constraints form a cycle (contradictory placement).
func (g *Graph) Solve() (map[string]float64, error) {
	// Collapse edges onto union-find group roots.
	adj := make(map[string][]sepEdge)
	indeg := make(map[string]int)
	groups := make(map[string]bool)
	for _, n := range g.order {
		groups[g.find(n)] = true
	}
	edgeCount := 0
	for _, e := range g.edges {
		from, to := g.find(e.from), g.find(e.to)
		if from == to {
			// Linked nodes with a nonzero required separation cannot be placed.
			return nil, errors.New(errors.ErrCodeInvalidLayout,
				"%s axis: %s and %s are linked but also %g apart", g.axis, e.from, e.to, e.sep)
		}
		adj[from] = append(adj[from], sepEdge{from: from, to: to, sep: e.sep})
		indeg[to]++
		edgeCount++
	}

	// Longest path via Kahn's algorithm: every group lands at the maximum
	// accumulated separation from any source.
	pos := make(map[string]float64, len(groups))
	queue := make([]string, 0, len(groups))
	roots := make([]string, 0, len(groups))
	for r := range groups {
		roots = append(roots, r)
	}
	sort.Strings(roots)
	for _, r := range roots {
		if indeg[r] == 0 {
			queue = append(queue, r)
		}
	}

	processed := 0
	visited := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		visited++
		for _, e := range adj[curr] {
			if p := pos[curr] + e.sep; p > pos[e.to] {
				pos[e.to] = p
			}
			processed++
			indeg[e.to]--
			if indeg[e.to] == 0 {
				queue = append(queue, e.to)
			}
		}
	}
	if processed != edgeCount {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"%s axis: placement constraints form a cycle", g.axis)
	}

	// Normalize so the minimum coordinate is zero.
	minPos := math.Inf(1)
	for _, r := range roots {
		if pos[r] < minPos {
			minPos = pos[r]
		}
	}
	if math.IsInf(minPos, 1) {
		minPos = 0
	}

	out := make(map[string]float64, len(g.order))
	for _, n := range g.order {
		out[n] = pos[g.find(n)] - minPos
	}
	return out, nil
}

// register adds a node to the forest if unseen.
func (g *Graph) register(n string) {
	if _, ok := g.parent[n]; !ok {
		g.parent[n] = n
		g.order = append(g.order, n)
	}
}

// find returns the group root for n with path compression.
func (g *Graph) find(n string) string {
	g.register(n)
	root := n
	for g.parent[root] != root {
		root = g.parent[root]
	}
	for g.parent[n] != root {
		g.parent[n], n = root, g.parent[n]
	}
	return root
}
