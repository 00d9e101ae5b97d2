package typegraph

import (
	"slices"
	"strconv"

	"github.com/vk/signalgraph/internal/graph"
)

// ResolvePathSegments walks a chain of identifiers through a type's
// MakeChild declarations and returns the type the chain ends at. When a
// plain lookup fails, the resolver retries against mounted children whose
// mount path matches the segments consumed so far; this is what lets
// container-element access like "members.2" resolve even though "2" is not a
// direct MakeChild of the origin type.
//
// Failures distinguish three kinds, each reported with the failing segment's
// index and text: ErrMissingParent (an intermediate segment has no type to
// walk into), ErrMissingChild (the identifier does not exist), and
// ErrInvalidIndex (a numeric segment with no matching mounted child).
func (tg *TypeGraph) ResolvePathSegments(origin graph.Ref, segments []string) (graph.Ref, error) {
	tg.checkType(origin)

	// types[i] is the type reached after consuming i segments; a zero ref
	// records an unresolved reference passed through mid-chain.
	types := make([]graph.Ref, 1, len(segments)+1)
	types[0] = origin

	cur := origin
	for i, seg := range segments {
		if cur.IsZero() {
			return graph.Ref{}, pathErr(ErrMissingParent, i, seg)
		}

		decl, ok := tg.findMakeChild(cur, seg, nil)
		if !ok {
			// Mounted retry: a child declared on an ancestor whose mount
			// chain equals the segments consumed since that ancestor.
			for j := 0; j < i && !ok; j++ {
				if types[j].IsZero() {
					continue
				}
				decl, ok = tg.findMakeChild(types[j], seg, segments[j:i])
			}
		}
		if !ok {
			if isNumeric(seg) {
				return graph.Ref{}, pathErr(ErrInvalidIndex, i, seg)
			}
			return graph.Ref{}, pathErr(ErrMissingChild, i, seg)
		}

		next, err := tg.declChildType(decl)
		if err != nil {
			if i == len(segments)-1 {
				return graph.Ref{}, err
			}
			// Walk on; the next segment reports missing-parent with its
			// own position.
			next = graph.Ref{}
		}
		cur = next
		types = append(types, next)
	}
	return cur, nil
}

// ResolveInstancePath walks a chain of identifiers through an instance's
// composition children. A final segment naming a trait the node carries
// selects the node itself, mirroring link-reference resolution.
func (tg *TypeGraph) ResolveInstancePath(inst graph.Ref, segments []string) (graph.Ref, error) {
	cur := inst
	for i, seg := range segments {
		next, ok := graph.ChildByName(cur, seg)
		if !ok {
			if i == len(segments)-1 && tg.hasTraitNamed(cur, seg) {
				return cur, nil
			}
			if isNumeric(seg) {
				return graph.Ref{}, pathErr(ErrInvalidIndex, i, seg)
			}
			return graph.Ref{}, pathErr(ErrMissingChild, i, seg)
		}
		cur = next
	}
	return cur, nil
}

// findMakeChild returns the first MakeChild declaration on typ with the
// given identifier and mount chain (nil matches an unmounted declaration).
func (tg *TypeGraph) findMakeChild(typ graph.Ref, identifier string, mount []string) (graph.Ref, bool) {
	val, err := graph.WalkChildren(typ, func(e *graph.Edge) graph.WalkResult {
		decl := e.Target()
		if !tg.isMeta(decl, tg.metaMakeChild) {
			return graph.Continue()
		}
		if e.Name() != identifier {
			return graph.Continue()
		}
		if !slices.Equal(tg.MountChain(decl), mount) {
			return graph.Continue()
		}
		return graph.Return(decl)
	})
	if err != nil || val == nil {
		return graph.Ref{}, false
	}
	return val.(graph.Ref), true
}

// isNumeric reports whether a segment looks like a collection index.
func isNumeric(seg string) bool {
	_, err := strconv.Atoi(seg)
	return err == nil
}
