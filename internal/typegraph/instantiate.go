package typegraph

import (
	"fmt"
	"strings"

	"github.com/vk/signalgraph/internal/graph"
)

// Instantiate expands a type definition into a live instance subgraph and
// returns its root node. It fails with ErrUnresolvedTypeReference,
// ErrUnresolvedMountReference or ErrRecursiveType; structural problems in
// the type graph itself (malformed declarations) panic, since registration
// rules them out.
//
// All transient compiler state is scoped to this call and released as a
// whole when it returns, on success and on every error path alike.
func (tg *TypeGraph) Instantiate(typ graph.Ref) (graph.Ref, error) {
	tg.checkType(typ)
	c := &compile{tg: tg, active: make(map[graph.NodeID]struct{})}
	return c.instantiate(typ)
}

// compile carries the per-call state of one Instantiate invocation. active
// holds the types currently being expanded on the recursion stack.
type compile struct {
	tg     *TypeGraph
	active map[graph.NodeID]struct{}
}

// instantiate is the recursive core: one call per type in the MakeChild
// tree, two passes per call. A type reached while it is still on the
// expansion stack declares itself, directly or transitively, and is
// rejected with ErrRecursiveType.
func (c *compile) instantiate(typ graph.Ref) (graph.Ref, error) {
	tg := c.tg
	if _, ok := c.active[typ.ID()]; ok {
		return graph.Ref{}, fmt.Errorf("%w: %q", ErrRecursiveType, tg.TypeName(typ))
	}
	c.active[typ.ID()] = struct{}{}
	defer delete(c.active, typ.ID())

	inst := tg.g.NewNode()
	graph.SetType(inst, typ)

	// Child pass, in declaration order.
	_, err := graph.WalkChildren(typ, func(e *graph.Edge) graph.WalkResult {
		decl := e.Target()
		if !tg.isMeta(decl, tg.metaMakeChild) {
			return graph.Continue()
		}
		if err := c.makeChild(inst, decl, e.Name()); err != nil {
			return graph.Fail(fmt.Errorf("instantiating %q: %w", tg.TypeName(typ), err))
		}
		return graph.Continue()
	})
	if err != nil {
		return graph.Ref{}, err
	}

	// Link pass. Disabled while the type graph bootstraps itself.
	if !tg.bootstrapped {
		return inst, nil
	}
	_, err = graph.WalkChildren(typ, func(e *graph.Edge) graph.WalkResult {
		decl := e.Target()
		if !tg.isMeta(decl, tg.metaMakeLink) {
			return graph.Continue()
		}
		if err := c.makeLink(inst, decl); err != nil {
			return graph.Fail(fmt.Errorf("linking %q: %w", tg.TypeName(typ), err))
		}
		return graph.Continue()
	})
	if err != nil {
		return graph.Ref{}, err
	}
	return inst, nil
}

// makeChild executes one MakeChild declaration against the instance being
// built.
func (c *compile) makeChild(inst, decl graph.Ref, identifier string) error {
	tg := c.tg
	childType, err := tg.declChildType(decl)
	if err != nil {
		return err
	}

	// The attachment point is the instance root unless the declaration is
	// mounted, in which case the mount chain is resolved against whatever
	// the child pass has built so far.
	attach := inst
	if mount := tg.MountChain(decl); len(mount) > 0 {
		attach, err = resolveMountChain(inst, mount)
		if err != nil {
			return err
		}
	}

	child, err := c.instantiate(childType)
	if err != nil {
		return err
	}
	if _, err := graph.AddChild(attach, child, identifier); err != nil {
		return err
	}
	for key, val := range tg.DeclaredAttrs(decl) {
		child.SetAttr(key, val)
	}
	return nil
}

// resolveMountChain walks composition children from the instance root along
// the declared mount path.
func resolveMountChain(inst graph.Ref, mount []string) (graph.Ref, error) {
	cur := inst
	for i, seg := range mount {
		next, ok := graph.ChildByName(cur, seg)
		if !ok {
			return graph.Ref{}, fmt.Errorf("%w: %v", ErrUnresolvedMountReference, pathErr(ErrMissingChild, i, seg))
		}
		cur = next
	}
	return cur, nil
}

// makeLink executes one MakeLink declaration against the instance being
// built.
func (c *compile) makeLink(inst, decl graph.Ref) error {
	tg := c.tg
	lhsSegs, rhsSegs := tg.LinkEndpoints(decl)

	lhs, err := c.resolveLinkRef(inst, lhsSegs)
	if err != nil {
		return err
	}
	rhs, err := c.resolveLinkRef(inst, rhsSegs)
	if err != nil {
		return err
	}

	kind := tg.linkKind(decl)
	if kind == graph.KindTrait {
		_, err := graph.AddTrait(lhs, rhs)
		return err
	}
	spec := graph.EdgeSpec{
		Shallow: tg.linkShallow(decl),
		Attrs:   tg.DeclaredAttrs(decl),
	}
	if name, ok := decl.Attr(attrLinkName); ok {
		spec.Name = name.AsString()
	}
	_, err = tg.g.AddEdge(kind, lhs, rhs, spec)
	return err
}

// resolveLinkRef resolves one reference chain of a MakeLink against a fresh
// instance. An empty chain names the instance root itself. A "@name" final
// segment escapes to the named sibling type and instantiates it, which is
// how trait instances come into being.
func (c *compile) resolveLinkRef(inst graph.Ref, segs []string) (graph.Ref, error) {
	tg := c.tg
	cur := inst
	for i, seg := range segs {
		if strings.HasPrefix(seg, TypeEscapePrefix) {
			if i != len(segs)-1 {
				return graph.Ref{}, fmt.Errorf("%w: type escape %q must be the final segment", ErrUnresolvedTypeReference, seg)
			}
			name := strings.TrimPrefix(seg, TypeEscapePrefix)
			typ, ok := graph.ChildByName(tg.root, name)
			if !ok {
				return graph.Ref{}, fmt.Errorf("%w: %q", ErrUnresolvedTypeReference, name)
			}
			return c.instantiate(typ)
		}
		next, ok := graph.ChildByName(cur, seg)
		if !ok {
			// A final segment naming a trait the node already carries
			// selects the node itself: "hv.is_interface" is the interface
			// facet of hv, not a separate child.
			if i == len(segs)-1 && tg.hasTraitNamed(cur, seg) {
				return cur, nil
			}
			return graph.Ref{}, pathErr(ErrMissingChild, i, seg)
		}
		cur = next
	}
	return cur, nil
}

// hasTraitNamed reports whether n carries a trait instance whose type was
// registered under the given name.
func (tg *TypeGraph) hasTraitNamed(n graph.Ref, name string) bool {
	typ, ok := graph.ChildByName(tg.root, name)
	if !ok {
		return false
	}
	return graph.HasTraitOfType(n, typ)
}

// linkKind decodes the edge kind a MakeLink declares.
func (tg *TypeGraph) linkKind(decl graph.Ref) graph.Kind {
	val, ok := decl.Attr(attrLinkKind)
	if !ok {
		panic("typegraph: MakeLink has no kind attribute")
	}
	kind, _ := val.AsBigFloat().Int64()
	return graph.Kind(kind)
}

// linkShallow decodes a MakeLink's shallow flag.
func (tg *TypeGraph) linkShallow(decl graph.Ref) bool {
	val, ok := decl.Attr(attrShallow)
	return ok && val.True()
}
