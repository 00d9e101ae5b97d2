package graph

// Composition edges form the parent→child hierarchy. Every composition edge
// is named with the child's field identifier within its parent, and every
// node has at most one composition parent, so the edges form a forest.

// AddChild attaches child under parent with the given identifier. It panics
// when the identifier is empty or when child already has a composition
// parent; both violate invariants the registration and instantiation layers
// uphold. Identifier uniqueness among siblings is not enforced here; lookup
// keeps first-match semantics.
func AddChild(parent, child Ref, identifier string) (*Edge, error) {
	if identifier == "" {
		panic("graph: composition edge requires an identifier")
	}
	if _, ok := ParentEdge(child); ok {
		panic("graph: node already has a composition parent")
	}
	return parent.g.AddEdge(KindComposition, parent, child, EdgeSpec{Name: identifier})
}

// ParentEdge returns the composition edge whose target is n, if any.
func ParentEdge(n Ref) (*Edge, bool) {
	return n.g.SoleEdgeTo(n, KindComposition)
}

// Parent returns n's composition parent and the identifier n is attached
// under. The boolean is false for roots.
func Parent(n Ref) (Ref, string, bool) {
	e, ok := ParentEdge(n)
	if !ok {
		return Ref{}, "", false
	}
	if e.Name() == "" {
		// Unreachable through AddChild; a bare edge here means the graph
		// was corrupted.
		panic("graph: composition edge has no identifier")
	}
	return e.Source(), e.Name(), true
}

// ChildEdgeByName returns the first composition edge under parent whose
// identifier matches, in insertion order.
func ChildEdgeByName(parent Ref, identifier string) (*Edge, bool) {
	val, err := parent.g.WalkEdgesFrom(parent, KindComposition, func(e *Edge) WalkResult {
		if e.Name() == identifier {
			return Return(e)
		}
		return Continue()
	})
	if err != nil || val == nil {
		return nil, false
	}
	return val.(*Edge), true
}

// ChildByName returns the first composition child of parent with the given
// identifier, in insertion order.
func ChildByName(parent Ref, identifier string) (Ref, bool) {
	e, ok := ChildEdgeByName(parent, identifier)
	if !ok {
		return Ref{}, false
	}
	return e.Target(), true
}

// WalkChildren visits parent's composition edges in declaration order.
func WalkChildren(parent Ref, fn EdgeVisitor) (any, error) {
	return parent.g.WalkEdgesFrom(parent, KindComposition, fn)
}
