package graph

// WalkAction tells a traversal what to do after visiting one element.
type WalkAction int

const (
	// WalkContinue moves on to the next element.
	WalkContinue WalkAction = iota
	// WalkStop ends the traversal without a result.
	WalkStop
	// WalkReturn ends the traversal and hands the visitor's value back to
	// the traversal's caller.
	WalkReturn
	// WalkError ends the traversal with the visitor's error.
	WalkError
)

// WalkResult is what a visitor callback returns. Use the Continue, Stop,
// Return and Fail constructors rather than filling the struct by hand.
type WalkResult struct {
	Action WalkAction
	Value  any
	Err    error
}

// Continue tells the traversal to keep going.
func Continue() WalkResult {
	return WalkResult{Action: WalkContinue}
}

// Stop ends the traversal without a result.
func Stop() WalkResult {
	return WalkResult{Action: WalkStop}
}

// Return ends the traversal and yields v to its caller.
func Return(v any) WalkResult {
	return WalkResult{Action: WalkReturn, Value: v}
}

// Fail ends the traversal with err.
func Fail(err error) WalkResult {
	return WalkResult{Action: WalkError, Err: err}
}

// EdgeVisitor is the callback type for edge traversals. It always returns
// before the next edge is visited; the traversal holds no other suspension
// point.
type EdgeVisitor func(e *Edge) WalkResult

// walkEdges runs the visitor over a slice of edges, filtering by kind.
func walkEdges(edges []*Edge, kind Kind, fn EdgeVisitor) (any, bool, error) {
	for _, e := range edges {
		if e.kind != kind {
			continue
		}
		res := fn(e)
		switch res.Action {
		case WalkContinue:
		case WalkStop:
			return nil, true, nil
		case WalkReturn:
			return res.Value, true, nil
		case WalkError:
			return nil, true, res.Err
		}
	}
	return nil, false, nil
}

// WalkEdgesFrom visits every edge of the given kind whose source is r, in
// insertion order.
func (g *Graph) WalkEdgesFrom(r Ref, kind Kind, fn EdgeVisitor) (any, error) {
	rec, err := g.record(r)
	if err != nil {
		return nil, err
	}
	val, _, err := walkEdges(rec.out, kind, fn)
	return val, err
}

// WalkEdgesTo visits every edge of the given kind whose target is r, in
// insertion order.
func (g *Graph) WalkEdgesTo(r Ref, kind Kind, fn EdgeVisitor) (any, error) {
	rec, err := g.record(r)
	if err != nil {
		return nil, err
	}
	val, _, err := walkEdges(rec.in, kind, fn)
	return val, err
}

// WalkEdgesTouching visits every edge of the given kind touching r in either
// direction: outgoing edges first, then incoming.
func (g *Graph) WalkEdgesTouching(r Ref, kind Kind, fn EdgeVisitor) (any, error) {
	rec, err := g.record(r)
	if err != nil {
		return nil, err
	}
	val, halted, err := walkEdges(rec.out, kind, fn)
	if halted || err != nil {
		return val, err
	}
	val, _, err = walkEdges(rec.in, kind, fn)
	return val, err
}

// soleEdge returns the single edge of the given kind in the slice. It panics
// when more than one is present: the at-most-one kinds (composition parent,
// type edge) only ever reach a second edge through corruption.
func soleEdge(edges []*Edge, kind Kind, what string) (*Edge, bool) {
	var found *Edge
	for _, e := range edges {
		if e.kind != kind {
			continue
		}
		if found != nil {
			panic("graph: multiple " + what + " edges on one node")
		}
		found = e
	}
	return found, found != nil
}

// SoleEdgeFrom returns the unique outgoing edge of the given kind on r, if
// any. Panics when the at-most-one invariant is violated.
func (g *Graph) SoleEdgeFrom(r Ref, kind Kind) (*Edge, bool) {
	rec, err := g.record(r)
	if err != nil {
		return nil, false
	}
	return soleEdge(rec.out, kind, "outgoing "+kind.String())
}

// SoleEdgeTo returns the unique incoming edge of the given kind on r, if any.
// Panics when the at-most-one invariant is violated.
func (g *Graph) SoleEdgeTo(r Ref, kind Kind) (*Edge, bool) {
	rec, err := g.record(r)
	if err != nil {
		return nil, false
	}
	return soleEdge(rec.in, kind, "incoming "+kind.String())
}
