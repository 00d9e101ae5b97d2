package pathfind

import (
	"github.com/vk/signalgraph/internal/graph"
)

// Step is one traversed edge of a path, paired with the node it leads to.
// The To field disambiguates direction: connection edges are traversed both
// ways and composition edges are traversed upward as well as downward.
type Step struct {
	Edge *graph.Edge
	To   graph.Ref
}

// Path is an ordered list of traversed edges anchored at a start instance.
// Paths are value types; extending one never mutates the original.
type Path struct {
	start graph.Ref
	steps []Step
	// hasShallow records whether any traversed connection edge carried the
	// shallow flag; such paths must not climb past the starting depth.
	hasShallow bool
}

// newPath returns the empty path anchored at start.
func newPath(start graph.Ref) Path {
	return Path{start: start}
}

// Start returns the node the path is anchored at.
func (p Path) Start() graph.Ref {
	return p.start
}

// Terminal returns the node the path currently ends at.
func (p Path) Terminal() graph.Ref {
	if len(p.steps) == 0 {
		return p.start
	}
	return p.steps[len(p.steps)-1].To
}

// Steps returns the traversed edges in order.
func (p Path) Steps() []Step {
	return p.steps
}

// Len returns the number of traversed edges.
func (p Path) Len() int {
	return len(p.steps)
}

// extend returns a copy of the path with one more traversed edge.
func (p Path) extend(e *graph.Edge, to graph.Ref) Path {
	steps := make([]Step, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	return Path{
		start:      p.start,
		steps:      append(steps, Step{Edge: e, To: to}),
		hasShallow: p.hasShallow || (e.Kind() == graph.KindConnection && e.Shallow()),
	}
}
