package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureKeyIsUnambiguous(t *testing.T) {
	// Under a separator join these two would render identically; the
	// identifiers deliberately contain the old separator bytes.
	a := signature{
		{parentType: "p", child: "a"},
		{parentType: "p", child: "b"},
	}
	b := signature{
		{parentType: "p", child: "a;p/b"},
	}
	assert.NotEqual(t, a.key(), b.key())

	t.Run("equal signatures share a key", func(t *testing.T) {
		c := signature{
			{parentType: "p", child: "a"},
			{parentType: "p", child: "b"},
		}
		assert.Equal(t, a.key(), c.key())
	})

	t.Run("push and pop round-trip the key", func(t *testing.T) {
		grown := a.push(sigElem{parentType: "q", child: "c"})
		assert.NotEqual(t, a.key(), grown.key())
		assert.Equal(t, a.key(), grown.pop().key())
	})
}
