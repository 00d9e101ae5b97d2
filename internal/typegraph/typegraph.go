package typegraph

import (
	"github.com/vk/signalgraph/internal/graph"
	"github.com/zclconf/go-cty/cty"
)

// Names of the builtin meta-types and the builtin interface trait type.
const (
	MetaMakeChildName     = "make_child"
	MetaMakeLinkName      = "make_link"
	MetaTypeReferenceName = "type_reference"

	// InterfaceTypeName is the builtin trait type marking a node as a valid
	// connectivity endpoint.
	InterfaceTypeName = "is_interface"
)

// TypeEscapePrefix marks a reference-path segment that escapes to a named
// sibling type instead of walking into a child.
const TypeEscapePrefix = "@"

// Attribute keys used on declaration nodes.
const (
	attrIdentifier = "identifier"
	attrMount      = "mount"
	attrCopy       = "attrs"
	attrRef        = "ref"
	attrLhs        = "lhs"
	attrRhs        = "rhs"
	attrShallow    = "shallow"
	attrLinkKind   = "kind"
	attrLinkName   = "name"
)

// ptrTarget names the pointer edge from a resolved TypeReference to its type.
const ptrTarget = "target"

// TypeGraph is the registry of type definitions and the compiler that
// expands them into instance subgraphs. It owns its backing graph; instances
// live in the same graph as the types that produced them.
type TypeGraph struct {
	g    *graph.Graph
	root graph.Ref

	metaMakeChild graph.Ref
	metaMakeLink  graph.Ref
	metaTypeRef   graph.Ref
	ifaceType     graph.Ref

	// bootstrapped gates the link pass: while the type graph builds its own
	// meta-types, instantiation must not try to resolve links through them.
	bootstrapped bool
}

// New creates a type graph with its root, the builtin meta-types, and the
// builtin is_interface trait type already registered.
func New() *TypeGraph {
	g := graph.New()
	tg := &TypeGraph{
		g:    g,
		root: g.NewNode(),
	}
	// Meta-types are created raw: the instantiation compiler depends on
	// them, so they cannot be built through it.
	tg.metaMakeChild = tg.rawType(MetaMakeChildName)
	tg.metaMakeLink = tg.rawType(MetaMakeLinkName)
	tg.metaTypeRef = tg.rawType(MetaTypeReferenceName)
	tg.bootstrapped = true

	tg.ifaceType = tg.AddType(InterfaceTypeName)
	return tg
}

// rawType attaches a bare type node under the root during bootstrap.
func (tg *TypeGraph) rawType(id string) graph.Ref {
	n := tg.g.NewNode()
	if _, err := graph.AddChild(tg.root, n, id); err != nil {
		panic(err)
	}
	return n
}

// Graph returns the backing graph store.
func (tg *TypeGraph) Graph() *graph.Graph {
	return tg.g
}

// Root returns the distinguished type graph root node.
func (tg *TypeGraph) Root() graph.Ref {
	return tg.root
}

// InterfaceType returns the builtin is_interface trait type node.
func (tg *TypeGraph) InterfaceType() graph.Ref {
	return tg.ifaceType
}

// AddType registers a type under the given identifier. Registration is
// idempotent by identity: a second call with the same identifier returns the
// existing type node.
func (tg *TypeGraph) AddType(id string) graph.Ref {
	if id == "" {
		panic("typegraph: type identifier must not be empty")
	}
	if existing, ok := graph.ChildByName(tg.root, id); ok {
		return existing
	}
	return tg.rawType(id)
}

// TypeByName looks up a registered type node by identifier.
func (tg *TypeGraph) TypeByName(id string) (graph.Ref, bool) {
	return graph.ChildByName(tg.root, id)
}

// TypeName returns the identifier a type node was registered under.
func (tg *TypeGraph) TypeName(typ graph.Ref) string {
	parent, id, ok := graph.Parent(typ)
	if !ok || parent.ID() != tg.root.ID() {
		panic("typegraph: node is not a registered type")
	}
	return id
}

// IsType reports whether n is a type node of this type graph.
func (tg *TypeGraph) IsType(n graph.Ref) bool {
	parent, _, ok := graph.Parent(n)
	return ok && parent.ID() == tg.root.ID()
}

// checkType panics when typ is not a registered type node. Passing anything
// else into the registration API is a programmer error.
func (tg *TypeGraph) checkType(typ graph.Ref) {
	if !tg.IsType(typ) {
		panic("typegraph: expected a registered type node")
	}
}

// isMeta reports whether n carries a type edge to the given meta-type.
func (tg *TypeGraph) isMeta(n, meta graph.Ref) bool {
	typ, ok := graph.TypeOf(n)
	return ok && typ.ID() == meta.ID()
}

// Types returns every registered type node in registration order, excluding
// the builtin meta-types.
func (tg *TypeGraph) Types() []graph.Ref {
	var types []graph.Ref
	_, _ = graph.WalkChildren(tg.root, func(e *graph.Edge) graph.WalkResult {
		switch e.Name() {
		case MetaMakeChildName, MetaMakeLinkName, MetaTypeReferenceName:
			return graph.Continue()
		}
		types = append(types, e.Target())
		return graph.Continue()
	})
	return types
}

// stringsVal encodes an identifier chain as a cty list attribute value.
func stringsVal(segs []string) cty.Value {
	if len(segs) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(segs))
	for i, s := range segs {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

// stringsFromVal decodes an identifier chain attribute.
func stringsFromVal(v cty.Value) []string {
	var segs []string
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		segs = append(segs, ev.AsString())
	}
	return segs
}
