package graph

import "sort"

// Pointer edges are non-hierarchical references. A pointer optionally
// carries an identifier and a numeric index; ordered sequences and sets of
// pointers are built by sharing an identifier and varying the index.

// AddPointer creates a pointer edge from one node to a target.
func AddPointer(from, to Ref, name string, index int) (*Edge, error) {
	return from.g.AddEdge(KindPointer, from, to, EdgeSpec{Name: name, Index: index})
}

// PointersFrom returns all pointer edges leaving from under the given name,
// sorted by index. Insertion order breaks index ties.
func PointersFrom(from Ref, name string) []*Edge {
	var edges []*Edge
	_, _ = from.g.WalkEdgesFrom(from, KindPointer, func(e *Edge) WalkResult {
		if e.Name() == name {
			edges = append(edges, e)
		}
		return Continue()
	})
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Index() < edges[j].Index()
	})
	return edges
}

// PointerAt returns the target of the pointer with the given name and index.
func PointerAt(from Ref, name string, index int) (Ref, bool) {
	val, err := from.g.WalkEdgesFrom(from, KindPointer, func(e *Edge) WalkResult {
		if e.Name() == name && e.Index() == index {
			return Return(e.Target())
		}
		return Continue()
	})
	if err != nil || val == nil {
		return Ref{}, false
	}
	return val.(Ref), true
}

// SolePointerFrom returns the unique pointer edge with the given name, if
// any. Used where the protocol guarantees at most one, such as a resolved
// type reference.
func SolePointerFrom(from Ref, name string) (*Edge, bool) {
	edges := PointersFrom(from, name)
	switch len(edges) {
	case 0:
		return nil, false
	case 1:
		return edges[0], true
	}
	panic("graph: multiple pointer edges named " + name + " where one was required")
}
