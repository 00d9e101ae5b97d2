package pathfind

import (
	"strconv"
	"strings"

	"github.com/vk/signalgraph/internal/graph"
)

// sigElem records one "ascend to parent" hop: the parent's type and the
// child identifier the ascent came out of.
type sigElem struct {
	parentType graph.NodeID
	child      string
}

// signature is a type-path signature: the ordered ascent hops a path has
// taken and not yet undone. The first element is always the seed element
// (start node's type, empty identifier).
type signature []sigElem

// key encodes the signature for use as a map key. Every field is length
// prefixed: child identifiers come from manifests and may contain any
// separator byte, so a plain join could collide two distinct signatures.
func (s signature) key() string {
	var b strings.Builder
	for _, e := range s {
		b.WriteString(strconv.Itoa(len(e.parentType)))
		b.WriteByte(':')
		b.WriteString(string(e.parentType))
		b.WriteString(strconv.Itoa(len(e.child)))
		b.WriteByte(':')
		b.WriteString(e.child)
	}
	return b.String()
}

// push returns a copy of the signature with one more ascent recorded.
func (s signature) push(e sigElem) signature {
	out := make(signature, len(s), len(s)+1)
	copy(out, s)
	return append(out, e)
}

// pop returns the signature with the last ascent undone. Safe to share with
// the original: signatures are only ever grown through push, which copies.
func (s signature) pop() signature {
	return s[:len(s)-1]
}

// last returns the most recent ascent hop.
func (s signature) last() sigElem {
	return s[len(s)-1]
}
