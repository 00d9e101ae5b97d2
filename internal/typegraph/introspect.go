package typegraph

import (
	"sort"

	"github.com/vk/signalgraph/internal/graph"
	"github.com/zclconf/go-cty/cty"
	"lukechampine.com/blake3"
)

// The functions in this file exist for external tooling and tests: they
// recover declared structure and population data without re-deriving it from
// raw edges. The compiler itself does not depend on them beyond MountChain
// and DeclaredAttrs.

// MakeChildren returns a type's MakeChild declaration nodes in declaration
// order.
func (tg *TypeGraph) MakeChildren(typ graph.Ref) []graph.Ref {
	tg.checkType(typ)
	return tg.declsOf(typ, tg.metaMakeChild)
}

// MakeLinks returns a type's MakeLink declaration nodes in declaration
// order.
func (tg *TypeGraph) MakeLinks(typ graph.Ref) []graph.Ref {
	tg.checkType(typ)
	return tg.declsOf(typ, tg.metaMakeLink)
}

func (tg *TypeGraph) declsOf(typ, meta graph.Ref) []graph.Ref {
	var decls []graph.Ref
	_, _ = graph.WalkChildren(typ, func(e *graph.Edge) graph.WalkResult {
		if tg.isMeta(e.Target(), meta) {
			decls = append(decls, e.Target())
		}
		return graph.Continue()
	})
	return decls
}

// Identifier returns the identifier a MakeChild attaches its child under.
func (tg *TypeGraph) Identifier(decl graph.Ref) string {
	val, ok := decl.Attr(attrIdentifier)
	if !ok {
		panic("typegraph: MakeChild has no identifier attribute")
	}
	return val.AsString()
}

// MountChain returns a MakeChild's mount path as an ordered identifier list,
// or nil for a declaration mounted at the instance root.
func (tg *TypeGraph) MountChain(decl graph.Ref) []string {
	val, ok := decl.Attr(attrMount)
	if !ok {
		return nil
	}
	return stringsFromVal(val)
}

// DeclaredTypeName returns the symbolic type name a MakeChild references,
// whether or not the reference has been linked yet.
func (tg *TypeGraph) DeclaredTypeName(decl graph.Ref) string {
	ref, ok := graph.ChildByName(decl, "type")
	if !ok {
		panic("typegraph: MakeChild has no TypeReference child")
	}
	return tg.referenceName(ref)
}

// DeclaredAttrs returns the literal attributes a declaration copies onto its
// product, or nil when none were declared.
func (tg *TypeGraph) DeclaredAttrs(decl graph.Ref) map[string]cty.Value {
	val, ok := decl.Attr(attrCopy)
	if !ok {
		return nil
	}
	return val.AsValueMap()
}

// LinkEndpoints returns a MakeLink's lhs and rhs reference chains as ordered
// segment lists.
func (tg *TypeGraph) LinkEndpoints(decl graph.Ref) (lhs, rhs []string) {
	lval, ok := decl.Attr(attrLhs)
	if !ok {
		panic("typegraph: MakeLink has no lhs attribute")
	}
	rval, ok := decl.Attr(attrRhs)
	if !ok {
		panic("typegraph: MakeLink has no rhs attribute")
	}
	return stringsFromVal(lval), stringsFromVal(rval)
}

// Census returns the number of instances per registered type name. Builtin
// meta-types and their declaration nodes are not counted.
func (tg *TypeGraph) Census() map[string]int {
	counts := make(map[string]int)
	for _, typ := range tg.Types() {
		name := tg.TypeName(typ)
		counts[name] = 0
		_, _ = graph.WalkInstancesOf(typ, func(e *graph.Edge) graph.WalkResult {
			counts[name]++
			return graph.Continue()
		})
	}
	return counts
}

// Fingerprint hashes the shape of an instance subgraph: the type name at
// every level plus the ordered child identifiers, plus the sorted trait type
// names on each node. Two instantiations of the same type always produce
// equal fingerprints even though every node identity differs.
func (tg *TypeGraph) Fingerprint(inst graph.Ref) [32]byte {
	h := blake3.New(32, nil)
	tg.writeShape(h, inst)
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// writeShape serializes an instance subgraph into the hasher in a canonical
// order.
func (tg *TypeGraph) writeShape(h *blake3.Hasher, inst graph.Ref) {
	typ := graph.MustTypeOf(inst)
	h.Write([]byte(tg.TypeName(typ)))
	h.Write([]byte{'('})

	var traits []string
	_, _ = graph.WalkTraits(inst, func(e *graph.Edge) graph.WalkResult {
		traits = append(traits, tg.TypeName(graph.MustTypeOf(e.Target())))
		return graph.Continue()
	})
	sort.Strings(traits)
	for _, name := range traits {
		h.Write([]byte{'+'})
		h.Write([]byte(name))
	}

	_, _ = graph.WalkChildren(inst, func(e *graph.Edge) graph.WalkResult {
		h.Write([]byte(e.Name()))
		h.Write([]byte{'='})
		tg.writeShape(h, e.Target())
		h.Write([]byte{','})
		return graph.Continue()
	})
	h.Write([]byte{')'})
}
