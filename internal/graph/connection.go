package graph

// Connection edges represent wire/signal connections between two
// interface-trait-bearing nodes. Connectivity is symmetric, so traversal
// visits them in both directions; the shallow flag limits how deep in the
// hierarchy a connection remains valid (enforced by the path finder, not
// here).

// Connect creates an interface-connection edge between two nodes.
func Connect(a, b Ref, spec EdgeSpec) (*Edge, error) {
	return a.g.AddEdge(KindConnection, a, b, spec)
}

// WalkConnections visits every connection edge touching n, outgoing first.
func WalkConnections(n Ref, fn EdgeVisitor) (any, error) {
	return n.g.WalkEdgesTouching(n, KindConnection, fn)
}
