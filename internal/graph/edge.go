package graph

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Kind tags an edge with the relation it implements. The store treats kinds
// as opaque numbers; the per-kind helper files give them meaning.
type Kind int

const (
	// KindComposition is the parent→child hierarchy relation. Always named,
	// at most one per child (the composition edges form a forest).
	KindComposition Kind = iota + 1
	// KindPointer is a non-hierarchical reference, optionally named and
	// indexed. Basis for ordered pointer collections and type-reference
	// resolution.
	KindPointer
	// KindType is the instance→type relation, exactly one per instance.
	KindType
	// KindTrait associates a node with a trait instance. A node may carry
	// any number of trait edges.
	KindTrait
	// KindConnection is an interface-connection edge between two
	// interface-trait-bearing nodes. May be flagged shallow.
	KindConnection
)

// String returns the kind's name for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindComposition:
		return "composition"
	case KindPointer:
		return "pointer"
	case KindType:
		return "type"
	case KindTrait:
		return "trait"
	case KindConnection:
		return "connection"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// EdgeSpec carries the optional parts of an edge: its name, ordering index,
// the shallow flag, and arbitrary extra attributes.
type EdgeSpec struct {
	Name    string
	Index   int
	Shallow bool
	Attrs   map[string]cty.Value
}

// Edge is a directed relation between two nodes of the same graph.
type Edge struct {
	g       *Graph
	kind    Kind
	source  NodeID
	target  NodeID
	name    string
	index   int
	shallow bool
	attrs   map[string]cty.Value
}

// Kind returns the edge's kind tag.
func (e *Edge) Kind() Kind { return e.kind }

// Source returns a bound reference to the edge's source node.
func (e *Edge) Source() Ref { return Ref{id: e.source, g: e.g} }

// Target returns a bound reference to the edge's target node.
func (e *Edge) Target() Ref { return Ref{id: e.target, g: e.g} }

// Name returns the edge's name, or "" if unnamed.
func (e *Edge) Name() string { return e.name }

// Index returns the edge's ordering index.
func (e *Edge) Index() int { return e.index }

// Shallow reports whether the edge carries the shallow flag.
func (e *Edge) Shallow() bool { return e.shallow }

// Attr retrieves an extra attribute stored on the edge.
func (e *Edge) Attr(key string) (cty.Value, bool) {
	val, ok := e.attrs[key]
	return val, ok
}

// Peer returns the endpoint of the edge that is not n. It panics if n is
// neither endpoint; callers obtain edges from traversals anchored at n.
func (e *Edge) Peer(n Ref) Ref {
	switch n.id {
	case e.source:
		return e.Target()
	case e.target:
		return e.Source()
	}
	panic(fmt.Sprintf("graph: node %s is not an endpoint of this %s edge", n.id, e.kind))
}

// requireKind guards the per-kind helpers against edges of another kind.
func (e *Edge) requireKind(k Kind) error {
	if e.kind != k {
		return fmt.Errorf("%w: have %s, want %s", ErrEdgeKind, e.kind, k)
	}
	return nil
}

// AddEdge inserts an edge of the given kind between two nodes of this graph.
// Both refs must be bound to the receiver.
func (g *Graph) AddEdge(kind Kind, source, target Ref, spec EdgeSpec) (*Edge, error) {
	srcRec, err := g.record(source)
	if err != nil {
		return nil, err
	}
	tgtRec, err := g.record(target)
	if err != nil {
		return nil, err
	}
	e := &Edge{
		g:       g,
		kind:    kind,
		source:  source.id,
		target:  target.id,
		name:    spec.Name,
		index:   spec.Index,
		shallow: spec.Shallow,
		attrs:   spec.Attrs,
	}
	srcRec.out = append(srcRec.out, e)
	tgtRec.in = append(tgtRec.in, e)
	return e, nil
}
