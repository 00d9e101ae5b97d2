package graph

// Type edges record the instance→type "is-instance-of" relation. Exactly one
// per instance, created at instantiation and never mutated.

// SetType attaches the type edge of an instance. It panics when the instance
// is already typed: re-typing a node is a data-corruption class fault, not a
// recoverable condition.
func SetType(instance, typ Ref) *Edge {
	if _, ok := TypeOf(instance); ok {
		panic("graph: node already has a type edge")
	}
	e, err := instance.g.AddEdge(KindType, instance, typ, EdgeSpec{})
	if err != nil {
		panic(err)
	}
	return e
}

// TypeOf returns the type node of an instance, if it has one.
func TypeOf(instance Ref) (Ref, bool) {
	e, ok := instance.g.SoleEdgeFrom(instance, KindType)
	if !ok {
		return Ref{}, false
	}
	return e.Target(), true
}

// MustTypeOf returns the type node of an instance, panicking when the node
// has none. Reserved for call sites where the protocol guarantees a type
// edge; an untyped node there means the graph was corrupted.
func MustTypeOf(instance Ref) Ref {
	typ, ok := TypeOf(instance)
	if !ok {
		panic("graph: node has no type edge where one is required")
	}
	return typ
}

// WalkInstancesOf visits every type edge pointing at typ, i.e. one edge per
// instance of that type.
func WalkInstancesOf(typ Ref, fn EdgeVisitor) (any, error) {
	return typ.g.WalkEdgesTo(typ, KindType, fn)
}
