package graph

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"
)

// NodeID is the stable identity of a node. IDs are unique across graphs, so a
// dangling ID can never silently resolve against the wrong graph.
type NodeID string

// newNodeID mints a fresh node identity.
func newNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// Ref is a bound node reference: a node ID paired with the graph that owns
// it. Every store operation validates that the refs it receives belong to the
// graph they are used against.
type Ref struct {
	id NodeID
	g  *Graph
}

// ID returns the node identity of the reference.
func (r Ref) ID() NodeID {
	return r.id
}

// Graph returns the graph that owns the referenced node.
func (r Ref) Graph() *Graph {
	return r.g
}

// IsZero reports whether the reference is the zero value, i.e. bound to
// nothing.
func (r Ref) IsZero() bool {
	return r.g == nil
}

// Graph owns a set of nodes and the edges between them. Nodes are never
// copied between graphs; tearing down the graph releases everything it owns.
type Graph struct {
	nodes map[NodeID]*nodeRecord
	// order preserves node insertion order so that traversals are
	// deterministic.
	order []NodeID
}

// nodeRecord is the storage behind one node: its attribute map and the edges
// touching it, split by direction and kept in insertion order.
type nodeRecord struct {
	id    NodeID
	attrs map[string]cty.Value
	out   []*Edge
	in    []*Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*nodeRecord),
	}
}

// NewNode inserts a fresh node and returns a reference bound to this graph.
func (g *Graph) NewNode() Ref {
	id := newNodeID()
	g.nodes[id] = &nodeRecord{
		id:    id,
		attrs: make(map[string]cty.Value),
	}
	g.order = append(g.order, id)
	return Ref{id: id, g: g}
}

// Contains reports whether the reference is bound to this graph and its node
// still exists here.
func (g *Graph) Contains(r Ref) bool {
	if r.g != g {
		return false
	}
	_, ok := g.nodes[r.id]
	return ok
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// record resolves a ref to its storage, enforcing graph ownership.
func (g *Graph) record(r Ref) (*nodeRecord, error) {
	if r.g != g {
		return nil, fmt.Errorf("%w: node %s", ErrForeignRef, r.id)
	}
	rec, ok := g.nodes[r.id]
	if !ok {
		return nil, fmt.Errorf("%w: node %s", ErrForeignRef, r.id)
	}
	return rec, nil
}

// mustRecord is record for call sites where the ref was produced by this
// graph moments earlier; a failure there is corruption, not misuse.
func (g *Graph) mustRecord(r Ref) *nodeRecord {
	rec, err := g.record(r)
	if err != nil {
		panic(err)
	}
	return rec
}

// SetAttr stores a literal attribute value on the referenced node. The store
// treats the value as opaque; encoding conventions belong to the caller.
func (g *Graph) SetAttr(r Ref, key string, val cty.Value) error {
	rec, err := g.record(r)
	if err != nil {
		return err
	}
	rec.attrs[key] = val
	return nil
}

// Attr retrieves a literal attribute value from the referenced node.
func (g *Graph) Attr(r Ref, key string) (cty.Value, bool) {
	rec, err := g.record(r)
	if err != nil {
		return cty.NilVal, false
	}
	val, ok := rec.attrs[key]
	return val, ok
}

// SetAttr stores an attribute on the node the ref is bound to.
func (r Ref) SetAttr(key string, val cty.Value) {
	if err := r.g.SetAttr(r, key, val); err != nil {
		panic(err)
	}
}

// Attr retrieves an attribute from the node the ref is bound to.
func (r Ref) Attr(key string) (cty.Value, bool) {
	return r.g.Attr(r, key)
}

// WalkNodes visits every node in insertion order.
func (g *Graph) WalkNodes(fn func(Ref) WalkResult) (any, error) {
	for _, id := range g.order {
		res := fn(Ref{id: id, g: g})
		switch res.Action {
		case WalkContinue:
		case WalkStop:
			return nil, nil
		case WalkReturn:
			return res.Value, nil
		case WalkError:
			return nil, res.Err
		}
	}
	return nil, nil
}
