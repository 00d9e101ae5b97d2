package typegraph

import (
	"fmt"
	"slices"
	"sort"

	"github.com/vk/signalgraph/internal/graph"
	"github.com/zclconf/go-cty/cty"
)

// LinkSpec describes the edge a MakeLink declaration creates at
// instantiation time. A zero Kind defaults to an interface-connection edge.
type LinkSpec struct {
	Kind    graph.Kind
	Name    string
	Shallow bool
	Attrs   map[string]cty.Value
}

// AddMakeChild appends a MakeChild declaration to a type: instantiating typ
// will create a child of the type named childTypeID, attached under
// identifier, with the given literal attributes copied onto it. A non-empty
// mount chain attaches the child under that path instead of the instance
// root. The child type is recorded as a symbolic TypeReference; forward
// references are allowed until instantiation.
func (tg *TypeGraph) AddMakeChild(typ graph.Ref, childTypeID, identifier string, attrs map[string]cty.Value, mount []string) (graph.Ref, error) {
	tg.checkType(typ)
	if identifier == "" {
		panic("typegraph: MakeChild requires an identifier")
	}
	if childTypeID == "" {
		panic("typegraph: MakeChild requires a child type identifier")
	}

	// One identifier per mount point. The composition model itself keeps
	// first-match semantics, so rejecting duplicates here is what makes
	// down-traversal in the path finder unambiguous.
	for _, decl := range tg.MakeChildren(typ) {
		if tg.Identifier(decl) == identifier && slices.Equal(tg.MountChain(decl), mount) {
			return graph.Ref{}, fmt.Errorf("%w: %q on type %q", ErrDuplicateChild, identifier, tg.TypeName(typ))
		}
	}

	decl := tg.g.NewNode()
	graph.SetType(decl, tg.metaMakeChild)
	if _, err := graph.AddChild(typ, decl, identifier); err != nil {
		return graph.Ref{}, err
	}
	decl.SetAttr(attrIdentifier, cty.StringVal(identifier))
	if len(mount) > 0 {
		decl.SetAttr(attrMount, stringsVal(mount))
	}
	if len(attrs) > 0 {
		decl.SetAttr(attrCopy, cty.ObjectVal(attrs))
	}

	ref := tg.g.NewNode()
	graph.SetType(ref, tg.metaTypeRef)
	ref.SetAttr(attrRef, cty.StringVal(childTypeID))
	if _, err := graph.AddChild(decl, ref, "type"); err != nil {
		return graph.Ref{}, err
	}
	return decl, nil
}

// AddMakeLink appends a MakeLink declaration to a type: instantiating typ
// will resolve lhs and rhs against the fresh instance and create the
// declared edge between the two resolved nodes. A path segment prefixed with
// "@" escapes to a named sibling type; it must be the final segment, and the
// compiler instantiates that type to produce the endpoint (this is how trait
// instances are attached).
func (tg *TypeGraph) AddMakeLink(typ graph.Ref, lhs, rhs []string, spec LinkSpec) (graph.Ref, error) {
	tg.checkType(typ)
	kind := spec.Kind
	if kind == 0 {
		kind = graph.KindConnection
	}

	decl := tg.g.NewNode()
	graph.SetType(decl, tg.metaMakeLink)
	if _, err := graph.AddChild(typ, decl, "link"); err != nil {
		return graph.Ref{}, err
	}
	decl.SetAttr(attrLhs, stringsVal(lhs))
	decl.SetAttr(attrRhs, stringsVal(rhs))
	decl.SetAttr(attrLinkKind, cty.NumberIntVal(int64(kind)))
	decl.SetAttr(attrShallow, cty.BoolVal(spec.Shallow))
	if spec.Name != "" {
		decl.SetAttr(attrLinkName, cty.StringVal(spec.Name))
	}
	if len(spec.Attrs) > 0 {
		decl.SetAttr(attrCopy, cty.ObjectVal(spec.Attrs))
	}
	return decl, nil
}

// LinkReferences resolves every TypeReference whose named type is now
// registered, creating the pointer edge that instantiation follows. It
// returns the sorted, deduplicated names that are still unresolved, so a
// loader with forward references can call it once per pass and report
// leftovers at the end.
func (tg *TypeGraph) LinkReferences() []string {
	unresolved := make(map[string]struct{})
	_, _ = tg.g.WalkNodes(func(n graph.Ref) graph.WalkResult {
		if !tg.isMeta(n, tg.metaTypeRef) {
			return graph.Continue()
		}
		if _, ok := graph.SolePointerFrom(n, ptrTarget); ok {
			return graph.Continue()
		}
		name := tg.referenceName(n)
		typ, ok := graph.ChildByName(tg.root, name)
		if !ok {
			unresolved[name] = struct{}{}
			return graph.Continue()
		}
		if _, err := graph.AddPointer(n, typ, ptrTarget, 0); err != nil {
			return graph.Fail(err)
		}
		return graph.Continue()
	})

	names := make([]string, 0, len(unresolved))
	for name := range unresolved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// referenceName returns the symbolic type name a TypeReference was declared
// with.
func (tg *TypeGraph) referenceName(ref graph.Ref) string {
	val, ok := ref.Attr(attrRef)
	if !ok {
		panic("typegraph: TypeReference has no ref attribute")
	}
	return val.AsString()
}

// declChildType follows a MakeChild declaration's TypeReference to the
// concrete type node it was linked to.
func (tg *TypeGraph) declChildType(decl graph.Ref) (graph.Ref, error) {
	ref, ok := graph.ChildByName(decl, "type")
	if !ok {
		panic("typegraph: MakeChild has no TypeReference child")
	}
	ptr, ok := graph.SolePointerFrom(ref, ptrTarget)
	if !ok {
		return graph.Ref{}, fmt.Errorf("%w: %q", ErrUnresolvedTypeReference, tg.referenceName(ref))
	}
	return ptr.Target(), nil
}
