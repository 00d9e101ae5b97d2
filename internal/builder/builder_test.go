package builder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/signalgraph/internal/config"
	"github.com/vk/signalgraph/internal/graph"
	"github.com/vk/signalgraph/internal/hcl"
	"github.com/vk/signalgraph/internal/pathfind"
	"github.com/vk/signalgraph/internal/typegraph"
)

func TestApplyRegistersDeclarations(t *testing.T) {
	model := &config.Model{Components: map[string]*config.ComponentDefinition{
		"Electrical": {Name: "Electrical"},
		"Capacitor": {
			Name: "Capacitor",
			Children: []*config.ChildDecl{
				{Identifier: "p1", TypeName: "Electrical"},
				{Identifier: "p2", TypeName: "Electrical"},
			},
		},
	}}

	tg := typegraph.New()
	require.NoError(t, Apply(context.Background(), tg, model))

	cap, ok := tg.TypeByName("Capacitor")
	require.True(t, ok)
	decls := tg.MakeChildren(cap)
	require.Len(t, decls, 2)
	assert.Equal(t, "p1", tg.Identifier(decls[0]))
	assert.Equal(t, "Electrical", tg.DeclaredTypeName(decls[0]))

	inst, err := tg.Instantiate(cap)
	require.NoError(t, err)
	_, ok = graph.ChildByName(inst, "p2")
	assert.True(t, ok)
}

func TestApplyReportsUnresolvedReferences(t *testing.T) {
	model := &config.Model{Components: map[string]*config.ComponentDefinition{
		"Board": {
			Name: "Board",
			Children: []*config.ChildDecl{
				{Identifier: "u1", TypeName: "Undefined"},
			},
		},
	}}

	err := Apply(context.Background(), typegraph.New(), model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined")
}

func TestApplyRejectsDuplicateChildren(t *testing.T) {
	model := &config.Model{Components: map[string]*config.ComponentDefinition{
		"Electrical": {Name: "Electrical"},
		"Pair": {
			Name: "Pair",
			Children: []*config.ChildDecl{
				{Identifier: "p", TypeName: "Electrical"},
				{Identifier: "p", TypeName: "Electrical"},
			},
		},
	}}

	err := Apply(context.Background(), typegraph.New(), model)
	require.Error(t, err)
	assert.ErrorIs(t, err, typegraph.ErrDuplicateChild)
}

// TestHCLRoundTrip drives the full front-end chain: an HCL manifest through
// the loader and builder, instantiation, and a path search whose result
// matches the inline-declared form of the same component.
func TestHCLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battery.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
component "Electrical" {}

component "Battery" {
  child "hv" {
    type = "Electrical"
  }
  child "lv" {
    type = "Electrical"
  }
  trait "is_interface" {
    path = "hv"
  }
  trait "is_interface" {
    path = "lv"
  }
  link {
    from = "hv"
    to   = "lv"
  }
}
`), 0o644))

	ctx := context.Background()
	model, err := hcl.NewLoader().Load(ctx, path)
	require.NoError(t, err)

	tg := typegraph.New()
	require.NoError(t, Apply(ctx, tg, model))

	battery, ok := tg.TypeByName("Battery")
	require.True(t, ok)
	inst, err := tg.Instantiate(battery)
	require.NoError(t, err)

	hv, ok := graph.ChildByName(inst, "hv")
	require.True(t, ok)
	lv, ok := graph.ChildByName(inst, "lv")
	require.True(t, ok)
	assert.True(t, graph.HasTraitOfType(hv, tg.InterfaceType()))

	paths, err := pathfind.FindPaths(tg, hv)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, lv.ID(), paths[0].Terminal().ID())
}
