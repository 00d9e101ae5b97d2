package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNewNode(t *testing.T) {
	g := New()
	a := g.NewNode()
	b := g.NewNode()

	require.False(t, a.IsZero())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, g.Contains(a))
	assert.True(t, g.Contains(b))
	assert.Equal(t, 2, g.Len())
}

func TestBoundRefs(t *testing.T) {
	g1 := New()
	g2 := New()
	a := g1.NewNode()
	b := g2.NewNode()

	t.Run("cross-graph attribute access fails", func(t *testing.T) {
		err := g2.SetAttr(a, "k", cty.StringVal("v"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrForeignRef)
	})

	t.Run("cross-graph edge creation fails", func(t *testing.T) {
		_, err := g1.AddEdge(KindPointer, a, b, EdgeSpec{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrForeignRef)
	})

	t.Run("contains rejects foreign refs", func(t *testing.T) {
		assert.False(t, g1.Contains(b))
		assert.False(t, g2.Contains(a))
	})
}

func TestAttributes(t *testing.T) {
	g := New()
	n := g.NewNode()

	_, ok := n.Attr("missing")
	assert.False(t, ok)

	n.SetAttr("name", cty.StringVal("p1"))
	n.SetAttr("pins", cty.NumberIntVal(2))
	n.SetAttr("polarized", cty.False)

	val, ok := n.Attr("name")
	require.True(t, ok)
	assert.Equal(t, "p1", val.AsString())

	val, ok = n.Attr("pins")
	require.True(t, ok)
	assert.True(t, val.RawEquals(cty.NumberIntVal(2)))

	// Overwrite keeps the latest value.
	n.SetAttr("name", cty.StringVal("p2"))
	val, _ = n.Attr("name")
	assert.Equal(t, "p2", val.AsString())
}

func TestWalkEdges(t *testing.T) {
	g := New()
	hub := g.NewNode()
	t1 := g.NewNode()
	t2 := g.NewNode()
	t3 := g.NewNode()

	_, err := AddPointer(hub, t1, "ref", 0)
	require.NoError(t, err)
	_, err = AddPointer(hub, t2, "ref", 1)
	require.NoError(t, err)
	_, err = g.AddEdge(KindConnection, hub, t3, EdgeSpec{})
	require.NoError(t, err)

	t.Run("filters by kind", func(t *testing.T) {
		var seen int
		_, err := g.WalkEdgesFrom(hub, KindPointer, func(e *Edge) WalkResult {
			seen++
			return Continue()
		})
		require.NoError(t, err)
		assert.Equal(t, 2, seen)
	})

	t.Run("stop halts traversal", func(t *testing.T) {
		var seen int
		_, err := g.WalkEdgesFrom(hub, KindPointer, func(e *Edge) WalkResult {
			seen++
			return Stop()
		})
		require.NoError(t, err)
		assert.Equal(t, 1, seen)
	})

	t.Run("return yields a value", func(t *testing.T) {
		val, err := g.WalkEdgesFrom(hub, KindPointer, func(e *Edge) WalkResult {
			if e.Index() == 1 {
				return Return(e.Target())
			}
			return Continue()
		})
		require.NoError(t, err)
		assert.Equal(t, t2.ID(), val.(Ref).ID())
	})

	t.Run("error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := g.WalkEdgesFrom(hub, KindPointer, func(e *Edge) WalkResult {
			return Fail(boom)
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("touching visits both directions", func(t *testing.T) {
		var seen int
		_, err := g.WalkEdgesTouching(t3, KindConnection, func(e *Edge) WalkResult {
			seen++
			assert.Equal(t, hub.ID(), e.Peer(t3).ID())
			return Continue()
		})
		require.NoError(t, err)
		assert.Equal(t, 1, seen)
	})
}

func TestEdgeKindGuard(t *testing.T) {
	g := New()
	a := g.NewNode()
	b := g.NewNode()
	e, err := g.AddEdge(KindPointer, a, b, EdgeSpec{})
	require.NoError(t, err)

	assert.NoError(t, e.requireKind(KindPointer))
	err = e.requireKind(KindComposition)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEdgeKind)
}

func TestComposition(t *testing.T) {
	g := New()
	parent := g.NewNode()
	c1 := g.NewNode()
	c2 := g.NewNode()

	_, err := AddChild(parent, c1, "p1")
	require.NoError(t, err)
	_, err = AddChild(parent, c2, "p2")
	require.NoError(t, err)

	t.Run("parent lookup", func(t *testing.T) {
		got, ident, ok := Parent(c1)
		require.True(t, ok)
		assert.Equal(t, parent.ID(), got.ID())
		assert.Equal(t, "p1", ident)

		_, _, ok = Parent(parent)
		assert.False(t, ok)
	})

	t.Run("child lookup by identifier", func(t *testing.T) {
		got, ok := ChildByName(parent, "p2")
		require.True(t, ok)
		assert.Equal(t, c2.ID(), got.ID())

		_, ok = ChildByName(parent, "p3")
		assert.False(t, ok)
	})

	t.Run("children walk in declaration order", func(t *testing.T) {
		var idents []string
		_, err := WalkChildren(parent, func(e *Edge) WalkResult {
			idents = append(idents, e.Name())
			return Continue()
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, idents)
	})

	t.Run("duplicate identifiers resolve to first match", func(t *testing.T) {
		dup := g.NewNode()
		_, err := AddChild(parent, dup, "p1")
		require.NoError(t, err)

		got, ok := ChildByName(parent, "p1")
		require.True(t, ok)
		assert.Equal(t, c1.ID(), got.ID())
	})

	t.Run("empty identifier panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = AddChild(parent, g.NewNode(), "")
		})
	})

	t.Run("second parent panics", func(t *testing.T) {
		other := g.NewNode()
		assert.Panics(t, func() {
			_, _ = AddChild(other, c1, "again")
		})
	})
}

func TestPointers(t *testing.T) {
	g := New()
	set := g.NewNode()
	e0 := g.NewNode()
	e1 := g.NewNode()
	e2 := g.NewNode()

	// Insert out of order; retrieval sorts by index.
	_, err := AddPointer(set, e2, "members", 2)
	require.NoError(t, err)
	_, err = AddPointer(set, e0, "members", 0)
	require.NoError(t, err)
	_, err = AddPointer(set, e1, "members", 1)
	require.NoError(t, err)
	_, err = AddPointer(set, g.NewNode(), "other", 0)
	require.NoError(t, err)

	edges := PointersFrom(set, "members")
	require.Len(t, edges, 3)
	assert.Equal(t, e0.ID(), edges[0].Target().ID())
	assert.Equal(t, e1.ID(), edges[1].Target().ID())
	assert.Equal(t, e2.ID(), edges[2].Target().ID())

	got, ok := PointerAt(set, "members", 1)
	require.True(t, ok)
	assert.Equal(t, e1.ID(), got.ID())

	_, ok = PointerAt(set, "members", 9)
	assert.False(t, ok)
}

func TestTypeEdge(t *testing.T) {
	g := New()
	typ := g.NewNode()
	inst := g.NewNode()

	_, ok := TypeOf(inst)
	assert.False(t, ok)

	SetType(inst, typ)
	got, ok := TypeOf(inst)
	require.True(t, ok)
	assert.Equal(t, typ.ID(), got.ID())
	assert.Equal(t, typ.ID(), MustTypeOf(inst).ID())

	t.Run("re-typing panics", func(t *testing.T) {
		assert.Panics(t, func() {
			SetType(inst, g.NewNode())
		})
	})

	t.Run("must on untyped node panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustTypeOf(g.NewNode())
		})
	})

	t.Run("instances are enumerable from the type", func(t *testing.T) {
		second := g.NewNode()
		SetType(second, typ)

		var count int
		_, err := WalkInstancesOf(typ, func(e *Edge) WalkResult {
			count++
			return Continue()
		})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestTraits(t *testing.T) {
	g := New()
	ifaceType := g.NewNode()
	otherType := g.NewNode()
	n := g.NewNode()

	assert.False(t, HasTraitOfType(n, ifaceType))

	traitInst := g.NewNode()
	SetType(traitInst, ifaceType)
	_, err := AddTrait(n, traitInst)
	require.NoError(t, err)

	assert.True(t, HasTraitOfType(n, ifaceType))
	assert.False(t, HasTraitOfType(n, otherType))

	got, ok := TraitOfType(n, ifaceType)
	require.True(t, ok)
	assert.Equal(t, traitInst.ID(), got.ID())

	t.Run("multiple traits coexist", func(t *testing.T) {
		secondInst := g.NewNode()
		SetType(secondInst, otherType)
		_, err := AddTrait(n, secondInst)
		require.NoError(t, err)

		assert.True(t, HasTraitOfType(n, ifaceType))
		assert.True(t, HasTraitOfType(n, otherType))
	})
}

func TestConnections(t *testing.T) {
	g := New()
	a := g.NewNode()
	b := g.NewNode()

	_, err := Connect(a, b, EdgeSpec{Shallow: true})
	require.NoError(t, err)

	// Visible from both endpoints.
	for _, n := range []Ref{a, b} {
		var peers []NodeID
		_, err := WalkConnections(n, func(e *Edge) WalkResult {
			assert.True(t, e.Shallow())
			peers = append(peers, e.Peer(n).ID())
			return Continue()
		})
		require.NoError(t, err)
		require.Len(t, peers, 1)
	}
}
