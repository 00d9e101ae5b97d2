package graph

// Trait edges associate a node with trait instances. A node may carry any
// number of traits; each trait instance is itself typed through its own type
// edge, which is what "does this node behave as X" queries check.

// AddTrait attaches a trait instance to a node.
func AddTrait(n, traitInstance Ref) (*Edge, error) {
	return n.g.AddEdge(KindTrait, n, traitInstance, EdgeSpec{})
}

// WalkTraits visits every trait edge leaving n.
func WalkTraits(n Ref, fn EdgeVisitor) (any, error) {
	return n.g.WalkEdgesFrom(n, KindTrait, fn)
}

// TraitOfType returns n's trait instance whose type edge points at
// traitType, if any.
func TraitOfType(n, traitType Ref) (Ref, bool) {
	val, err := WalkTraits(n, func(e *Edge) WalkResult {
		inst := e.Target()
		if typ, ok := TypeOf(inst); ok && typ.ID() == traitType.ID() {
			return Return(inst)
		}
		return Continue()
	})
	if err != nil || val == nil {
		return Ref{}, false
	}
	return val.(Ref), true
}

// HasTraitOfType reports whether n carries a trait instance of traitType.
func HasTraitOfType(n, traitType Ref) bool {
	_, ok := TraitOfType(n, traitType)
	return ok
}
